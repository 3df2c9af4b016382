package authz

import (
	"strconv"

	"fiber-admin/models"

	"golang.org/x/exp/slices"
)

const timeLayout = "2006-01-02 15:04:05"

// TreeItem adalah satu node pada menu tree yang dikirim ke frontend.
// Children hanya muncul kalau node benar-benar punya anak; frontend
// memakai kehadiran field itu sebagai penanda node bisa di-expand.
type TreeItem struct {
	ID        uint        `json:"id"`
	Label     string      `json:"label"`
	LabelEn   string      `json:"labelEn"`
	Icon      string      `json:"icon"`
	Router    string      `json:"router"`
	Key       string      `json:"key"`
	Rule      string      `json:"rule,omitempty"`
	Type      int         `json:"type"`
	Order     int         `json:"order"`
	State     int         `json:"state"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	Children  []*TreeItem `json:"children,omitempty"`
}

// BuildTree menyusun kumpulan menu datar menjadi forest bersarang.
// Node yang parent-nya tidak ada di input (misal terfilter oleh
// otorisasi) dipromosikan jadi root supaya subtree-nya tetap tampil.
// Hasilnya deterministik: setiap daftar sibling diurutkan naik
// berdasarkan (order, id), apapun urutan inputnya.
func BuildTree(menus []models.Menu) []*TreeItem {
	index := make(map[uint]*TreeItem, len(menus))
	for i := range menus {
		m := &menus[i]
		item := &TreeItem{
			ID:        m.ID,
			Label:     m.Label,
			LabelEn:   m.LabelEn,
			Icon:      m.Icon,
			Router:    m.Router,
			Key:       m.Router,
			Type:      m.Type,
			Order:     m.MenuOrder,
			State:     m.State,
			CreatedAt: m.CreatedAt.Format(timeLayout),
			UpdatedAt: m.UpdatedAt.Format(timeLayout),
		}
		if m.Permission != nil {
			item.Rule = m.Permission.Name
		}
		index[m.ID] = item
	}

	forced := forcedRoots(menus)
	roots := []*TreeItem{}
	for i := range menus {
		m := &menus[i]
		item := index[m.ID]
		if m.ParentID != nil && !forced[m.ID] {
			if parent, ok := index[*m.ParentID]; ok {
				parent.Children = append(parent.Children, item)
				continue
			}
		}
		roots = append(roots, item)
	}

	sortTree(roots)
	return roots
}

// forcedRoots deteksi node yang rantai parent-nya berputar dan tidak
// pernah mencapai root. Satu edge per siklus diputus dengan memaksa
// node asalnya jadi root; sisa anggota siklus tetap menempel lewat
// edge parent yang masih ada, jadi tidak ada node yang hilang dari
// output.
func forcedRoots(menus []models.Menu) map[uint]bool {
	parents := make(map[uint]*uint, len(menus))
	for i := range menus {
		parents[menus[i].ID] = menus[i].ParentID
	}

	const (
		walking = 1
		settled = 2
	)
	state := make(map[uint]int, len(menus))
	forced := make(map[uint]bool)

	var walk func(id uint)
	walk = func(id uint) {
		if state[id] != 0 {
			return
		}
		state[id] = walking
		if parent := parents[id]; parent != nil {
			if _, inSet := parents[*parent]; inSet {
				if state[*parent] == walking {
					forced[id] = true
				} else {
					walk(*parent)
				}
			}
		}
		state[id] = settled
	}
	for id := range parents {
		walk(id)
	}
	return forced
}

// sortTree memangkas children kosong lalu mengurutkan sibling, dari
// bawah ke atas.
func sortTree(items []*TreeItem) {
	for _, item := range items {
		if len(item.Children) == 0 {
			item.Children = nil
			continue
		}
		sortTree(item.Children)
	}
	slices.SortFunc(items, func(a, b *TreeItem) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return int(a.ID) - int(b.ID)
	})
}

// SelectTreeItem adalah node untuk widget pemilihan menu di halaman
// otorisasi role/user. Value dan Key berisi id dalam bentuk string.
type SelectTreeItem struct {
	Title    string            `json:"title"`
	Value    string            `json:"value"`
	Key      string            `json:"key"`
	Type     int               `json:"type"`
	Icon     string            `json:"icon"`
	Children []*SelectTreeItem `json:"children,omitempty"`

	id uint
}

// BuildSelectTree menyusun tree untuk widget pemilihan. Sibling
// diurutkan berdasarkan id numerik.
func BuildSelectTree(menus []models.Menu) []*SelectTreeItem {
	index := make(map[uint]*SelectTreeItem, len(menus))
	for i := range menus {
		m := &menus[i]
		index[m.ID] = &SelectTreeItem{
			Title: m.Label,
			Value: strconv.FormatUint(uint64(m.ID), 10),
			Key:   strconv.FormatUint(uint64(m.ID), 10),
			Type:  m.Type,
			Icon:  m.Icon,
			id:    m.ID,
		}
	}

	forced := forcedRoots(menus)
	roots := []*SelectTreeItem{}
	for i := range menus {
		m := &menus[i]
		item := index[m.ID]
		if m.ParentID != nil && !forced[m.ID] {
			if parent, ok := index[*m.ParentID]; ok {
				parent.Children = append(parent.Children, item)
				continue
			}
		}
		roots = append(roots, item)
	}

	sortSelectTree(roots)
	return roots
}

func sortSelectTree(items []*SelectTreeItem) {
	for _, item := range items {
		if len(item.Children) == 0 {
			item.Children = nil
			continue
		}
		sortSelectTree(item.Children)
	}
	slices.SortFunc(items, func(a, b *SelectTreeItem) int {
		return int(a.id) - int(b.id)
	})
}
