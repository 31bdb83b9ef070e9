package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

// Toast category icons.
var (
	IconToastNeutral = "\uf0f3" // bell
	IconToastInfo    = "\uf05a" // info-circle
	IconToastSuccess = "\uf058" // check-circle
	IconToastWarning = "\uf071" // warning
	IconToastDanger  = "\uf057" // times-circle
)

// IconDismiss marks the per-toast dismiss control.
var IconDismiss = "\uf00d"

const IconBullet = "\u2022"
