package csvio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const accented = "title,amount,type,date,source,purpose\n\"Café crème\",4.5,expense,2024-05-01,\"Cash\",\"Makanan\"\n"

func TestUTF8Reader(t *testing.T) {
	windows1252, err := charmap.Windows1252.NewEncoder().String(accented)
	require.NoError(t, err)

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(accented)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "PlainUTF8", input: []byte(accented)},
		{name: "UTF8WithBOM", input: append([]byte{0xEF, 0xBB, 0xBF}, accented...)},
		{name: "UTF16LE", input: []byte(utf16le)},
		{name: "Windows1252", input: []byte(windows1252)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := utf8Reader(bytes.NewReader(tt.input))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, accented, string(got))
		})
	}
}

func TestReadWindows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String(accented)
	require.NoError(t, err)

	txs, err := Read(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Café crème", txs[0].Title)
}

func TestTrimPartialRune(t *testing.T) {
	euro := []byte("€") // 3 bytes

	assert.Equal(t, []byte("ab"), trimPartialRune(append([]byte("ab"), euro[:2]...)))
	assert.Equal(t, append([]byte("ab"), euro...), trimPartialRune(append([]byte("ab"), euro...)))
	assert.Equal(t, []byte("abc"), trimPartialRune([]byte("abc")))
	assert.Empty(t, trimPartialRune(nil))
}
