package i18n

// Message keys.
const (
	PageTitle = "user.page_title"

	HomeTitle = "home.title"
	HomeBody  = "home.body"

	UserError        = "user.error"
	UserStripeError  = "user.stripe_error"
	BannerTitle      = "banner.title"
	SkeletonLoading  = "skeleton.loading"
	ProfileDetails   = "profile.details"
	ProfileName      = "profile.name"
	ProfileContact   = "profile.contact"
	ProfileRefresh   = "profile.refresh"
	WalletTitle      = "wallet.title"
	WalletInterested = "wallet.interested"
	WalletConnect    = "wallet.connect"
	WalletConnected  = "wallet.connected"
	WalletIncome     = "wallet.income"
	WalletDisconnect = "wallet.disconnect"
	WalletHelp       = "wallet.help"

	FlashWalletConnected    = "flash.wallet_connected"
	FlashWalletDisconnected = "flash.wallet_disconnected"
	FlashWalletError        = "flash.wallet_error"

	ListingsTitle       = "listings.title"
	ListingsDescription = "listings.description"
	ListingsEmpty       = "listings.empty"
	ListingGuests       = "listing.guests"
	ListingPrice        = "listing.price"

	BookingsTitle       = "bookings.title"
	BookingsDescription = "bookings.description"
	BookingsEmpty       = "bookings.empty"
	BookingCheckIn      = "booking.check_in"
	BookingCheckOut     = "booking.check_out"

	PagerPrevious = "pager.previous"
	PagerNext     = "pager.next"
	PagerLabel    = "pager.label"
)
