package pages_test

import (
	"bytes"
	"testing"

	"github.com/nfrund/tinyhouse/internal/i18n"
	"github.com/nfrund/tinyhouse/web/src/templates/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestHome(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pages.Home(i18n.New(language.Spanish)).Render(&buf))

	assert.Contains(t, buf.String(), "<h1>Encuentra un lugar para quedarte</h1>")
}
