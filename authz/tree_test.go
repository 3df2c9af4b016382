package authz

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"fiber-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func menu(id uint, parentID *uint, order int) models.Menu {
	return models.Menu{
		ID:        id,
		Label:     "menu",
		Type:      models.MenuTypePage,
		MenuOrder: order,
		State:     models.MenuStateVisible,
		ParentID:  parentID,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildTreeEmptyInput(t *testing.T) {
	assert.Empty(t, BuildTree(nil))
	assert.Empty(t, BuildTree([]models.Menu{}))
}

func TestBuildTreeNesting(t *testing.T) {
	menus := []models.Menu{
		menu(1, nil, 1),
		menu(2, uintPtr(1), 1),
		menu(3, uintPtr(2), 1),
	}

	tree := BuildTree(menus)
	require.Len(t, tree, 1)
	assert.Equal(t, uint(1), tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, uint(2), tree[0].Children[0].ID)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, uint(3), tree[0].Children[0].Children[0].ID)
	assert.Nil(t, tree[0].Children[0].Children[0].Children)
}

func TestBuildTreeOrderIndependent(t *testing.T) {
	menus := []models.Menu{
		menu(1, nil, 2),
		menu(2, nil, 1),
		menu(3, uintPtr(1), 5),
		menu(4, uintPtr(1), 3),
		menu(5, uintPtr(2), 1),
		menu(6, uintPtr(4), 1),
	}

	want, err := json.Marshal(BuildTree(menus))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Menu, len(menus))
		copy(shuffled, menus)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := json.Marshal(BuildTree(shuffled))
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestBuildTreeSiblingSort(t *testing.T) {
	menus := []models.Menu{
		menu(3, nil, 2),
		menu(1, nil, 2),
		menu(2, nil, 1),
	}

	tree := BuildTree(menus)
	require.Len(t, tree, 3)
	// order dulu, id untuk pemecah seri
	assert.Equal(t, uint(2), tree[0].ID)
	assert.Equal(t, uint(1), tree[1].ID)
	assert.Equal(t, uint(3), tree[2].ID)
}

func TestBuildTreePromotesOrphanToRoot(t *testing.T) {
	// parent 7 tidak ada di input, anak-anaknya naik jadi root
	menus := []models.Menu{
		menu(1, nil, 1),
		menu(5, uintPtr(7), 2),
		menu(6, uintPtr(5), 1),
	}

	tree := BuildTree(menus)
	require.Len(t, tree, 2)
	assert.Equal(t, uint(1), tree[0].ID)
	assert.Equal(t, uint(5), tree[1].ID)
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, uint(6), tree[1].Children[0].ID)
}

func TestBuildTreePreservesNodeCount(t *testing.T) {
	menus := []models.Menu{
		menu(1, nil, 1),
		menu(2, uintPtr(1), 1),
		menu(3, uintPtr(99), 1),
		menu(4, uintPtr(2), 1),
	}

	var count func(items []*TreeItem) int
	count = func(items []*TreeItem) int {
		total := len(items)
		for _, item := range items {
			total += count(item.Children)
		}
		return total
	}
	assert.Equal(t, len(menus), count(BuildTree(menus)))
}

func TestBuildTreeCycleStillRendersAllNodes(t *testing.T) {
	// 1 dan 2 saling menunjuk sebagai parent; keduanya tetap muncul,
	// satu edge diputus supaya siklus jadi subtree biasa
	menus := []models.Menu{
		menu(1, uintPtr(2), 1),
		menu(2, uintPtr(1), 1),
		menu(3, nil, 1),
	}

	var count func(items []*TreeItem) int
	count = func(items []*TreeItem) int {
		total := len(items)
		for _, item := range items {
			total += count(item.Children)
		}
		return total
	}

	tree := BuildTree(menus)
	assert.Equal(t, len(menus), count(tree))

	seen := map[uint]bool{}
	var walk func(items []*TreeItem)
	walk = func(items []*TreeItem) {
		for _, item := range items {
			seen[item.ID] = true
			walk(item.Children)
		}
	}
	walk(tree)
	assert.Equal(t, map[uint]bool{1: true, 2: true, 3: true}, seen)
}

func TestBuildSelectTreeCycleStillRendersAllNodes(t *testing.T) {
	menus := []models.Menu{
		menu(1, uintPtr(2), 1),
		menu(2, uintPtr(1), 1),
	}

	var count func(items []*SelectTreeItem) int
	count = func(items []*SelectTreeItem) int {
		total := len(items)
		for _, item := range items {
			total += count(item.Children)
		}
		return total
	}
	assert.Equal(t, len(menus), count(BuildSelectTree(menus)))
}

func TestBuildTreeNeverEmitsEmptyChildren(t *testing.T) {
	menus := []models.Menu{
		menu(1, nil, 1),
		menu(2, uintPtr(1), 1),
	}

	raw, err := json.Marshal(BuildTree(menus))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"children":[]`)
}

func TestBuildTreeCarriesPermissionRule(t *testing.T) {
	m := menu(1, nil, 1)
	m.Permission = &models.Permission{ID: 9, Name: "orders"}

	tree := BuildTree([]models.Menu{m})
	require.Len(t, tree, 1)
	assert.Equal(t, "orders", tree[0].Rule)
}

func TestBuildSelectTree(t *testing.T) {
	menus := []models.Menu{
		menu(2, nil, 1),
		menu(10, uintPtr(2), 9),
		menu(3, uintPtr(2), 1),
	}
	menus[0].Label = "System"

	tree := BuildSelectTree(menus)
	require.Len(t, tree, 1)
	assert.Equal(t, "System", tree[0].Title)
	assert.Equal(t, "2", tree[0].Value)
	assert.Equal(t, "2", tree[0].Key)
	require.Len(t, tree[0].Children, 2)
	// sibling diurut berdasarkan id numerik, bukan order
	assert.Equal(t, "3", tree[0].Children[0].Value)
	assert.Equal(t, "10", tree[0].Children[1].Value)
}
