package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashID is the element id flash messages are rendered into.
const FlashID = "flash"

// FlashMessages renders the flash container. With oob set, the container
// carries hx-swap-oob so htmx replaces the one already on the page.
func FlashMessages(data FlashData, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<div id="` + FlashID + `" class="flash-area" aria-live="polite"`
		if oob {
			open += ` hx-swap-oob="true"`
		}
		if _, err := io.WriteString(w, open+">"); err != nil {
			return err
		}
		for _, msg := range data.Success {
			if err := writeFlash(w, "flash flash-success", msg); err != nil {
				return err
			}
		}
		for _, msg := range data.Error {
			if err := writeFlash(w, "flash flash-error", msg); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}

func writeFlash(w io.Writer, class, msg string) error {
	_, err := io.WriteString(w, `<div class="`+class+`" role="status">`+templ.EscapeString(msg)+`</div>`)
	return err
}
