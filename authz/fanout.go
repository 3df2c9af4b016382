package authz

import "fiber-admin/models"

// ResolvePermissions menghitung permission apa saja yang ikut terbawa
// kalau sekumpulan menu di-grant. Menu tanpa permission dilewati,
// permission yang dirujuk lebih dari satu menu hanya muncul sekali.
// Urutan hasil mengikuti urutan input.
func ResolvePermissions(menus []models.Menu) []uint {
	seen := make(map[uint]struct{}, len(menus))
	out := []uint{}
	for i := range menus {
		pid := menus[i].PermissionID
		if pid == nil {
			continue
		}
		if _, ok := seen[*pid]; ok {
			continue
		}
		seen[*pid] = struct{}{}
		out = append(out, *pid)
	}
	return out
}
