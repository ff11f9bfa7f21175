package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, HomeTitle, "Find a place to stay")
	message.SetString(lang, HomeBody, "Sign in to see your listings, bookings and payouts.")
	message.SetString(lang, PageTitle, "User")

	message.SetString(lang, UserError, "This user may not exist or we've encountered an error. Please try again soon.")
	message.SetString(lang, UserStripeError, "We had an issue connecting with Stripe. Please try again soon.")
	message.SetString(lang, BannerTitle, "Uh oh! Something went wrong :(")
	message.SetString(lang, SkeletonLoading, "Loading…")

	message.SetString(lang, ProfileDetails, "Details")
	message.SetString(lang, ProfileName, "Name:")
	message.SetString(lang, ProfileContact, "Contact:")
	message.SetString(lang, ProfileRefresh, "Refresh")

	message.SetString(lang, WalletTitle, "Additional Details")
	message.SetString(lang, WalletInterested, "Interested in becoming a host? Register with your Stripe account!")
	message.SetString(lang, WalletConnect, "Connect with Stripe")
	message.SetString(lang, WalletConnected, "Stripe Registered")
	message.SetString(lang, WalletIncome, "Income Earned: %s")
	message.SetString(lang, WalletDisconnect, "Disconnect Stripe")
	message.SetString(lang, WalletHelp, "We use Stripe to help transfer your earnings in a secure and trusted manner.")

	message.SetString(lang, FlashWalletConnected, "You've successfully connected your Stripe account!")
	message.SetString(lang, FlashWalletDisconnected, "You've successfully disconnected from Stripe!")
	message.SetString(lang, FlashWalletError, "Sorry! We weren't able to disconnect you from Stripe. Please try again later!")

	message.SetString(lang, ListingsTitle, "Listings")
	message.SetString(lang, ListingsDescription, "This section highlights the listings this user currently hosts and has made available for bookings.")
	message.SetString(lang, ListingsEmpty, "User doesn't have any listings yet!")
	message.SetString(lang, ListingGuests, "%d guests")
	message.SetString(lang, ListingPrice, "%s/day")

	message.SetString(lang, BookingsTitle, "Bookings")
	message.SetString(lang, BookingsDescription, "This section highlights the bookings you've made, and the check-in/check-out dates associated with said bookings.")
	message.SetString(lang, BookingsEmpty, "You haven't made any bookings!")
	message.SetString(lang, BookingCheckIn, "Check in: %s")
	message.SetString(lang, BookingCheckOut, "Check out: %s")

	message.SetString(lang, PagerPrevious, "Previous")
	message.SetString(lang, PagerNext, "Next")
	message.SetString(lang, PagerLabel, "Page %d")
}
