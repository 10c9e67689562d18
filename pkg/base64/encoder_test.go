package base64

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestEncoderReadByte(t *testing.T) {
	enc := NewEncoder([]byte("fooba"))
	require.Equal(t, 8, enc.Len())

	var got []byte
	for {
		c, err := enc.ReadByte()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, c)
		require.Equal(t, 8-len(got), enc.Len())
	}
	require.Equal(t, "Zm9vYmE=", string(got))

	// Stays at the end.
	_, err := enc.ReadByte()
	require.ErrorIs(t, err, io.EOF)
}

func TestEncoderEmpty(t *testing.T) {
	enc := NewEncoder(nil)
	require.Zero(t, enc.Len())

	_, err := enc.ReadByte()
	require.ErrorIs(t, err, io.EOF)
}

func TestEncoderDoesNotMutateInput(t *testing.T) {
	input := []byte("hello, world")
	orig := slices.Clone(input)

	_, err := io.ReadAll(NewEncoder(input))
	require.NoError(t, err)
	require.Equal(t, orig, input)
}

func TestEncoderRead(t *testing.T) {
	tests := []struct {
		Name    string
		BufSize int
	}{
		{Name: "single byte", BufSize: 1},
		{Name: "smaller than a chunk", BufSize: 3},
		{Name: "odd size", BufSize: 5},
		{Name: "larger than output", BufSize: 64},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			enc := NewEncoder([]byte("foobar!"))
			buf := make([]byte, test.BufSize)

			var sb strings.Builder
			for {
				n, err := enc.Read(buf)
				sb.Write(buf[:n])
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				require.NotZero(t, n)
			}
			require.Equal(t, "Zm9vYmFyIQ==", sb.String())
		})
	}
}

func TestEncoderAll(t *testing.T) {
	enc := NewEncoder([]byte("foobar"))

	var got []byte
	for c := range enc.All() {
		got = append(got, c)
		if len(got) == 4 {
			break
		}
	}
	require.Equal(t, "Zm9v", string(got))

	// Stopping early leaves the rest for the next caller.
	for c := range enc.All() {
		got = append(got, c)
	}
	require.Equal(t, "Zm9vYmFy", string(got))
}

func TestEncoderPaddingAndAlphabet(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

	input := make([]byte, 0, 256)
	for i := 0; i < 256; i++ {
		input = append(input, byte(i))
	}

	for n := 0; n <= len(input); n++ {
		encoded := Encode(input[:n])

		for i := 0; i < len(encoded); i++ {
			require.True(t, slices.Contains([]byte(alphabet), encoded[i]), "n=%d: %q", n, encoded[i])
		}

		var wantPad int
		switch n % 3 {
		case 1:
			wantPad = 2
		case 2:
			wantPad = 1
		}
		trimmed := strings.TrimRight(encoded, "=")
		require.Equal(t, wantPad, len(encoded)-len(trimmed), "n=%d", n)
		require.NotContains(t, trimmed, "=", "n=%d", n)
	}
}

func TestEncoderDoesNotAllocate(t *testing.T) {
	input := []byte("heapless base64 \x00\x7f\xff")
	want := Encode(input)

	var (
		out [32]byte
		n   int
	)

	t.Run("read byte", func(t *testing.T) {
		allocs := testing.AllocsPerRun(100, func() {
			enc := NewEncoder(input)
			for n = 0; ; n++ {
				c, err := enc.ReadByte()
				if err != nil {
					break
				}
				out[n] = c
			}
		})
		require.Zero(t, allocs)
		require.Equal(t, want, string(out[:n]))
	})

	t.Run("all", func(t *testing.T) {
		allocs := testing.AllocsPerRun(100, func() {
			n = 0
			for c := range NewEncoder(input).All() {
				out[n] = c
				n++
			}
		})
		require.Zero(t, allocs)
		require.Equal(t, want, string(out[:n]))
	})

	t.Run("read", func(t *testing.T) {
		allocs := testing.AllocsPerRun(100, func() {
			n, _ = NewEncoder(input).Read(out[:])
		})
		require.Zero(t, allocs)
		require.Equal(t, want, string(out[:n]))
	})
}
