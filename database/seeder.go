package database

import (
	"log"

	"fiber-admin/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders isi data awal: role admin, user admin, dan menu sistem
// beserta permission-nya. Aman dijalankan berulang.
func RunSeeders(db *gorm.DB) {
	role := seedAdminRole(db)
	seedAdminUser(db, role)
	seedSystemMenus(db, role)
}

func seedAdminRole(db *gorm.DB) *models.Role {
	var role models.Role
	if err := db.Where("name = ?", "admin").First(&role).Error; err == nil {
		return &role
	}
	role = models.Role{Name: "admin", Description: "Super administrator"}
	if err := db.Create(&role).Error; err != nil {
		log.Println("Warning: failed to seed admin role:", err)
	}
	return &role
}

func seedAdminUser(db *gorm.DB, role *models.Role) {
	var user models.User
	if err := db.Where("username = ?", "admin").First(&user).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Warning: failed to hash seed password:", err)
		return
	}
	user = models.User{
		Username: "admin",
		Password: string(hashed),
		Email:    "admin@example.com",
		Status:   models.UserStatusEnabled,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("Warning: failed to seed admin user:", err)
		return
	}
	db.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID})
}

type menuSeed struct {
	label    string
	labelEn  string
	icon     string
	router   string
	rule     string
	menuType int
	order    int
	children []menuSeed
}

func seedSystemMenus(db *gorm.DB, role *models.Role) {
	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count > 0 {
		return
	}

	seeds := []menuSeed{
		{
			label: "仪表盘", labelEn: "Dashboard", icon: "dashboard", router: "/dashboard",
			rule: "dashboard", menuType: models.MenuTypePage, order: 1,
		},
		{
			label: "系统管理", labelEn: "System", icon: "setting", router: "/system",
			menuType: models.MenuTypeDirectory, order: 2,
			children: []menuSeed{
				{label: "用户管理", labelEn: "Users", router: "/system/users", rule: "system/users", menuType: models.MenuTypePage, order: 1},
				{label: "角色管理", labelEn: "Roles", router: "/system/roles", rule: "system/roles", menuType: models.MenuTypePage, order: 2},
				{label: "菜单管理", labelEn: "Menus", router: "/system/menus", rule: "system/menus", menuType: models.MenuTypePage, order: 3},
				{label: "权限管理", labelEn: "Permissions", router: "/system/permissions", rule: "system/permissions", menuType: models.MenuTypePage, order: 4},
			},
		},
		{
			label: "内容管理", labelEn: "Contents", icon: "file", router: "/contents",
			menuType: models.MenuTypeDirectory, order: 3,
			children: []menuSeed{
				{label: "文章管理", labelEn: "Articles", router: "/contents/articles", rule: "contents/articles", menuType: models.MenuTypePage, order: 1},
			},
		},
	}

	for _, seed := range seeds {
		createMenuSeed(db, role, seed, nil)
	}
}

func createMenuSeed(db *gorm.DB, role *models.Role, seed menuSeed, parentID *uint) {
	menu := models.Menu{
		Label:     seed.label,
		LabelEn:   seed.labelEn,
		Icon:      seed.icon,
		Router:    seed.router,
		Type:      seed.menuType,
		MenuOrder: seed.order,
		State:     models.MenuStateVisible,
		ParentID:  parentID,
	}

	if seed.rule != "" {
		permission := models.Permission{Name: seed.rule, Description: seed.labelEn}
		if err := db.Where("name = ?", seed.rule).FirstOrCreate(&permission).Error; err != nil {
			log.Println("Warning: failed to seed permission", seed.rule, ":", err)
		} else {
			menu.PermissionID = &permission.ID
			db.Where("role_id = ? AND permission_id = ?", role.ID, permission.ID).
				FirstOrCreate(&models.RolePermission{RoleID: role.ID, PermissionID: permission.ID})
		}
	}

	if err := db.Create(&menu).Error; err != nil {
		log.Println("Warning: failed to seed menu", seed.label, ":", err)
		return
	}
	db.Where("role_id = ? AND menu_id = ?", role.ID, menu.ID).
		FirstOrCreate(&models.RoleMenu{RoleID: role.ID, MenuID: menu.ID})

	for _, child := range seed.children {
		createMenuSeed(db, role, child, &menu.ID)
	}
}
