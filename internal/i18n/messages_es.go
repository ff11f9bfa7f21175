package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, HomeTitle, "Encuentra un lugar para quedarte")
	message.SetString(lang, HomeBody, "Inicia sesión para ver tus anuncios, reservas y pagos.")
	message.SetString(lang, PageTitle, "Usuario")

	message.SetString(lang, UserError, "Es posible que este usuario no exista o que hayamos tenido un error. Inténtalo de nuevo pronto.")
	message.SetString(lang, UserStripeError, "Tuvimos un problema al conectar con Stripe. Inténtalo de nuevo pronto.")
	message.SetString(lang, BannerTitle, "¡Vaya! Algo salió mal :(")
	message.SetString(lang, SkeletonLoading, "Cargando…")

	message.SetString(lang, ProfileDetails, "Detalles")
	message.SetString(lang, ProfileName, "Nombre:")
	message.SetString(lang, ProfileContact, "Contacto:")
	message.SetString(lang, ProfileRefresh, "Actualizar")

	message.SetString(lang, WalletTitle, "Detalles adicionales")
	message.SetString(lang, WalletInterested, "¿Quieres ser anfitrión? ¡Regístrate con tu cuenta de Stripe!")
	message.SetString(lang, WalletConnect, "Conectar con Stripe")
	message.SetString(lang, WalletConnected, "Stripe registrado")
	message.SetString(lang, WalletIncome, "Ingresos: %s")
	message.SetString(lang, WalletDisconnect, "Desconectar Stripe")
	message.SetString(lang, WalletHelp, "Usamos Stripe para transferir tus ganancias de forma segura y confiable.")

	message.SetString(lang, FlashWalletConnected, "¡Conectaste tu cuenta de Stripe!")
	message.SetString(lang, FlashWalletDisconnected, "¡Te desconectaste de Stripe!")
	message.SetString(lang, FlashWalletError, "No pudimos desconectarte de Stripe. Inténtalo más tarde.")

	message.SetString(lang, ListingsTitle, "Alojamientos")
	message.SetString(lang, ListingsDescription, "Esta sección muestra los alojamientos que este usuario ofrece para reservar.")
	message.SetString(lang, ListingsEmpty, "¡Este usuario aún no tiene alojamientos!")
	message.SetString(lang, ListingGuests, "%d huéspedes")
	message.SetString(lang, ListingPrice, "%s/día")

	message.SetString(lang, BookingsTitle, "Reservas")
	message.SetString(lang, BookingsDescription, "Esta sección muestra tus reservas y sus fechas de entrada y salida.")
	message.SetString(lang, BookingsEmpty, "¡Aún no has hecho reservas!")
	message.SetString(lang, BookingCheckIn, "Entrada: %s")
	message.SetString(lang, BookingCheckOut, "Salida: %s")

	message.SetString(lang, PagerPrevious, "Anterior")
	message.SetString(lang, PagerNext, "Siguiente")
	message.SetString(lang, PagerLabel, "Página %d")
}
