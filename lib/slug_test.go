package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Blue Pearl!!":         "blue-pearl",
		"Absolute Black":       "absolute-black",
		"  Red   Dragon  ":     "red-dragon",
		"Emerald--Pearl":       "emerald-pearl",
		"Kashmir White (Ind.)": "kashmir-white-ind",
		"Statuario - Italy":    "statuario-italy",
		"Tan Brown\t2cm":       "tan-brown-2cm",
		"":                     "",
		"!!!":                  "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Bianco Carrara"), Slugify("Bianco Carrara"))
}
