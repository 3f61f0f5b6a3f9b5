package logging_test

import (
	"regexp"
	"testing"

	"github.com/kchristidis/listq/config"
	"github.com/kchristidis/listq/logging"
	"github.com/onsi/gomega/gbytes"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	. "github.com/onsi/gomega"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		format string
		says   string
	}{
		{config.FormatConsole, "queue freed\t{\"id\": 3}"},
		{config.FormatJSON, `"msg":"queue freed","id":3`},
		{config.FormatLogfmt, `msg="queue freed" id=3`},
	} {
		t.Run(tc.format, func(t *testing.T) {
			g := NewGomegaWithT(t)
			bfr := gbytes.NewBuffer()

			logger, err := logging.New(config.Log{Level: "info", Format: tc.format}, bfr)
			require.NoError(t, err)

			logger.Debug("hidden")
			logger.Info("queue freed", zap.Int("id", 3))

			g.Expect(bfr).To(gbytes.Say(regexp.QuoteMeta(tc.says)))
			g.Expect(string(bfr.Contents())).NotTo(ContainSubstring("hidden"))
		})
	}

	t.Run("bad level", func(t *testing.T) {
		_, err := logging.New(config.Log{Level: "loud", Format: config.FormatJSON}, gbytes.NewBuffer())
		require.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := logging.New(config.Log{Level: "info", Format: "xml"}, gbytes.NewBuffer())
		require.Error(t, err)
	})
}
