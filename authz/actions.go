package authz

import (
	"errors"
	"strings"
	"unicode"

	"fiber-admin/models"
)

// ErrActionsWithoutRule dikembalikan ketika menu dibuat dengan daftar
// action tapi tanpa rule dasar untuk menurunkan nama permission.
var ErrActionsWithoutRule = errors.New("actions require a base rule name")

// ActionPair adalah satu hasil generator: permission turunan plus menu
// Button pendampingnya. Reused true berarti permission dengan nama itu
// sudah ada dan dipakai ulang, bukan dibuat baru.
type ActionPair struct {
	Permission models.Permission
	Menu       models.Menu
	Reused     bool
}

// GenerateActions menurunkan permission "{baseRule}/{action}" dan menu
// Button di bawah base untuk setiap action, mengikuti urutan input.
// labels memetakan action ke nama tampilan; kalau kosong dipakai token
// action dengan huruf pertama kapital. existing berisi permission yang
// sudah ada, di-key nama, supaya pemanggilan ulang dengan action yang
// sama tidak membuat duplikat. Generator tidak menulis apa-apa; caller
// yang mempersist hasilnya dan mengaitkannya ke role.
func GenerateActions(base models.Menu, baseRule string, actions []string, labels map[string]string, existing map[string]models.Permission) ([]ActionPair, error) {
	if len(actions) == 0 {
		return nil, nil
	}
	if strings.TrimSpace(baseRule) == "" {
		return nil, ErrActionsWithoutRule
	}

	parentID := base.ID
	pairs := make([]ActionPair, 0, len(actions))
	for _, action := range actions {
		name := baseRule + "/" + action

		perm, reused := existing[name]
		if !reused {
			perm = models.Permission{Name: name}
		}

		display := labels[action]
		if display == "" {
			display = capitalize(action)
		}

		menu := models.Menu{
			Label:     base.Label + "-" + display,
			LabelEn:   base.LabelEn + "-" + capitalize(action),
			Type:      models.MenuTypeButton,
			MenuOrder: base.MenuOrder,
			State:     base.State,
			ParentID:  &parentID,
		}
		if reused && perm.ID != 0 {
			pid := perm.ID
			menu.PermissionID = &pid
		}

		pairs = append(pairs, ActionPair{Permission: perm, Menu: menu, Reused: reused})
	}
	return pairs, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
