package cli_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/limbo/habitual/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAt(t *testing.T) {
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	testCases := []struct {
		Desc     string
		At       string
		Expected time.Time
		Err      bool
	}{
		{Desc: "empty is now", At: "", Expected: fixed},
		{Desc: "local time", At: "2024-03-09 07:00", Expected: time.Date(2024, 3, 9, 7, 0, 0, 0, time.Local)},
		{Desc: "no date", At: "07:00", Err: true},
		{Desc: "seconds", At: "2024-03-09 07:00:00", Err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := cli.ParseAt(tc.At, func() time.Time { return fixed })
			if tc.Err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.Expected.Equal(got))
			assert.Equal(t, time.Local, got.Location())
		})
	}
}

func TestVapidKeys(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, (&cli.VapidKeysCmd{}).Run(&cli.Context{Out: out}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "VAPID_PUBLIC_KEY="))
	assert.True(t, strings.HasPrefix(lines[1], "VAPID_PRIVATE_KEY="))
	assert.Greater(t, len(lines[0]), len("VAPID_PUBLIC_KEY="))
}
