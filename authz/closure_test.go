package authz

import (
	"testing"
	"time"

	"fiber-admin/models"

	"github.com/stretchr/testify/assert"

	"gorm.io/gorm"
)

func dirMenu(id uint, parentID *uint) models.Menu {
	m := menu(id, parentID, 0)
	m.Type = models.MenuTypeDirectory
	return m
}

func TestResolveAncestorsIncludesChain(t *testing.T) {
	all := []models.Menu{
		dirMenu(1, nil),
		dirMenu(2, uintPtr(1)),
		menu(3, uintPtr(2), 0),
	}

	got := ResolveAncestors([]uint{3}, all)
	assert.Equal(t, []uint{1, 2, 3}, got)
}

func TestResolveAncestorsExcludesSiblings(t *testing.T) {
	all := []models.Menu{
		dirMenu(1, nil),
		dirMenu(2, uintPtr(1)),
		menu(3, uintPtr(2), 0),
		menu(4, uintPtr(2), 0), // sibling dari 3, tidak di-grant
		dirMenu(5, uintPtr(1)), // sibling dari 2
	}

	got := ResolveAncestors([]uint{3}, all)
	assert.Equal(t, []uint{1, 2, 3}, got)
}

func TestResolveAncestorsStopsAtHidden(t *testing.T) {
	hidden := dirMenu(1, nil)
	hidden.State = models.MenuStateHidden
	all := []models.Menu{
		hidden,
		dirMenu(2, uintPtr(1)),
		menu(3, uintPtr(2), 0),
	}

	got := ResolveAncestors([]uint{3}, all)
	assert.Equal(t, []uint{2, 3}, got)
}

func TestResolveAncestorsStopsAtButton(t *testing.T) {
	// ancestor bertipe Button itu data rusak; dikecualikan diam-diam
	button := menu(1, nil, 0)
	button.Type = models.MenuTypeButton
	all := []models.Menu{
		button,
		dirMenu(2, uintPtr(1)),
		menu(3, uintPtr(2), 0),
	}

	got := ResolveAncestors([]uint{3}, all)
	assert.Equal(t, []uint{2, 3}, got)
}

func TestResolveAncestorsStopsAtDeleted(t *testing.T) {
	deleted := dirMenu(2, uintPtr(1))
	deleted.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	all := []models.Menu{
		dirMenu(1, nil),
		deleted,
		menu(3, uintPtr(2), 0),
	}

	got := ResolveAncestors([]uint{3}, all)
	assert.Equal(t, []uint{3}, got)
}

func TestResolveAncestorsGrantedNotInPopulation(t *testing.T) {
	got := ResolveAncestors([]uint{42}, nil)
	assert.Equal(t, []uint{42}, got)
}

func TestResolveAncestorsSupersetOfGranted(t *testing.T) {
	all := []models.Menu{
		dirMenu(1, nil),
		menu(2, uintPtr(1), 0),
		menu(3, uintPtr(1), 0),
	}

	got := ResolveAncestors([]uint{2, 3}, all)
	assert.Equal(t, []uint{1, 2, 3}, got)
}

func TestResolveAncestorsTerminatesOnCycle(t *testing.T) {
	// siklus parent seharusnya ditolak saat write; resolver tetap
	// harus selesai kalau data terlanjur rusak
	all := []models.Menu{
		dirMenu(1, uintPtr(2)),
		dirMenu(2, uintPtr(1)),
		menu(3, uintPtr(1), 0),
	}

	done := make(chan []uint, 1)
	go func() {
		done <- ResolveAncestors([]uint{3}, all)
	}()

	select {
	case got := <-done:
		assert.Subset(t, got, []uint{1, 2, 3})
	case <-time.After(2 * time.Second):
		t.Fatal("ResolveAncestors did not terminate on cyclic parent chain")
	}
}

func TestResolveAncestorsEmptyGrant(t *testing.T) {
	all := []models.Menu{dirMenu(1, nil)}
	assert.Empty(t, ResolveAncestors(nil, all))
}
