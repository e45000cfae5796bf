package domain

// AccountIcon is the closed set of icon categories an account can carry.
type AccountIcon string

const (
	IconCash        AccountIcon = "cash"
	IconCreditCard  AccountIcon = "credit-card"
	IconBank        AccountIcon = "bank"
	IconPiggyBank   AccountIcon = "piggy-bank"
	IconShield      AccountIcon = "shield"
	IconTrending    AccountIcon = "trending"
	IconHandCoins   AccountIcon = "hand-coins"
	IconHome        AccountIcon = "home"
	IconAlertCircle AccountIcon = "alert-circle"
)

// AccountIcons lists every valid icon category.
var AccountIcons = []AccountIcon{
	IconCash, IconCreditCard, IconBank, IconPiggyBank, IconShield,
	IconTrending, IconHandCoins, IconHome, IconAlertCircle,
}

// Valid reports whether the icon is one of the known categories.
func (i AccountIcon) Valid() bool {
	switch i {
	case IconCash, IconCreditCard, IconBank, IconPiggyBank, IconShield,
		IconTrending, IconHandCoins, IconHome, IconAlertCircle:
		return true
	}
	return false
}

// Asset maps an icon category to the presentation asset token the frontend
// renders. Only three categories have a distinct asset; the rest fall back
// to the cash asset, matching the frontend's default branch.
func (i AccountIcon) Asset() string {
	switch i {
	case IconCash:
		return "dollar-sign"
	case IconBank:
		return "building"
	case IconTrending:
		return "trending-up"
	default:
		return "dollar-sign"
	}
}
