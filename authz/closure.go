package authz

import (
	"log"

	"fiber-admin/models"

	"golang.org/x/exp/slices"
)

// maxAncestorDepth membatasi panjang rantai parent yang diikuti.
// Siklus parent seharusnya sudah ditolak saat write, tapi kalau data
// terlanjur rusak kita berhenti di sini daripada loop selamanya.
const maxAncestorDepth = 64

// ResolveAncestors melebarkan himpunan menu yang di-grant langsung
// dengan semua ancestor yang dibutuhkan supaya tree tetap tersambung.
// Ancestor hanya diikutkan kalau belum dihapus, Visible, dan bukan
// tipe Button; begitu ketemu ancestor yang tidak memenuhi syarat,
// rantai di atasnya ikut dibuang. Hasilnya superset dari granted,
// terurut naik.
func ResolveAncestors(granted []uint, all []models.Menu) []uint {
	index := make(map[uint]*models.Menu, len(all))
	for i := range all {
		index[all[i].ID] = &all[i]
	}

	result := make(map[uint]struct{}, len(granted))
	for _, id := range granted {
		result[id] = struct{}{}

		cur, ok := index[id]
		if !ok {
			continue
		}
		depth := 0
		for cur.ParentID != nil {
			if depth++; depth > maxAncestorDepth {
				log.Println("Warning: ancestor chain exceeds", maxAncestorDepth, "levels at menu", cur.ID)
				break
			}
			parent, ok := index[*cur.ParentID]
			if !ok {
				break
			}
			if parent.DeletedAt.Valid || parent.State != models.MenuStateVisible || parent.Type >= models.MenuTypeButton {
				break
			}
			if _, seen := result[parent.ID]; seen {
				// rantai di atas parent ini sudah pernah dijalani
				break
			}
			result[parent.ID] = struct{}{}
			cur = parent
		}
	}

	out := make([]uint, 0, len(result))
	for id := range result {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
