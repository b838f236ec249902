package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/dacite/internal/config/colors"
	"github.com/thenoetrevino/dacite/internal/models"
)

func TestRenderReference(t *testing.T) {
	Init(*colors.Default())

	out := RenderReference(&models.Reference{
		Author:  "Smith",
		PubYear: 1990,
		Ref:     "Smith, J. (1990). Karoo.",
		DOI:     "10.1000/182",
	})
	assert.Contains(t, out, "Smith(1990)")
	assert.Contains(t, out, "Karoo")
	assert.Contains(t, out, "doi: 10.1000/182")

	assert.Contains(t, RenderReference(nil), "none")
}

func TestRenderCard(t *testing.T) {
	Init(*colors.Default())
	assert.Contains(t, RenderCard(Field("Name", "Karoo")), "Karoo")
}
