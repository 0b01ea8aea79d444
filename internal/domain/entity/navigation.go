package entity

// MenuItem is a single navigation entry. Icon names follow the lucide icon set used by the web client.
type MenuItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// Navigation is the menu layout shown to an account of a given role.
type Navigation struct {
	Role     Role       `json:"role"`
	Main     []MenuItem `json:"main"`
	Settings []MenuItem `json:"settings"`
}

func propertyManagerMenu() []MenuItem {
	return []MenuItem{
		{Title: "Dashboard", URL: "/dashboard", Icon: "home"},
		{Title: "Properties", URL: "/properties", Icon: "building-2"},
		{Title: "Tenants", URL: "/tenants", Icon: "users"},
		{Title: "Payments", URL: "/payments", Icon: "dollar-sign"},
		{Title: "Issues", URL: "/issues", Icon: "alert-triangle"},
		{Title: "Contracts", URL: "/contracts", Icon: "file-text"},
		{Title: "Reports", URL: "/reports", Icon: "bar-chart-3"},
	}
}

func tenantMenu() []MenuItem {
	return []MenuItem{
		{Title: "Dashboard", URL: "/dashboard", Icon: "home"},
		{Title: "My Property", URL: "/my-property", Icon: "building-2"},
		{Title: "Payments", URL: "/payments", Icon: "credit-card"},
		{Title: "Issues", URL: "/issues", Icon: "alert-triangle"},
		{Title: "Contract", URL: "/contract", Icon: "file-text"},
	}
}

func settingsMenu() []MenuItem {
	return []MenuItem{
		{Title: "Notifications", URL: "/notifications", Icon: "bell"},
		{Title: "Profile", URL: "/profile", Icon: "user"},
		{Title: "Settings", URL: "/settings", Icon: "settings"},
	}
}

// NavigationFor returns a fresh copy of the menu for role. ok is false for roles outside the closed set.
func NavigationFor(role Role) (nav *Navigation, ok bool) {
	var main []MenuItem

	switch role {
	case RoleLandlord, RoleAdmin:
		main = propertyManagerMenu()
	case RoleTenant:
		main = tenantMenu()
	default:
		return nil, false
	}

	return &Navigation{
		Role:     role,
		Main:     main,
		Settings: settingsMenu(),
	}, true
}
