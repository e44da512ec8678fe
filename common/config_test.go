package common

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fs afero.Fs, body string) string {
	t.Helper()
	f, err := afero.TempFile(fs, "", "adjcat.yaml")
	require.NoError(t, err)
	_, err = f.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestLoadConfig_Defaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
buffers:
  - text: "0123456789"
  - id: other
    file: ./other.txt
cases:
  - a: "[0:5]"
    b: "main[5:7]"
    expect: "0123456"
  - id: reversed
    a: "[5:7]"
    b: "[0:5]"
    mode: unordered
`)

	cfg, err := LoadConfig(fs, path)
	require.NoError(t, err)
	require.NoError(t, cfg.SetDefaults())
	require.NoError(t, cfg.Validate())

	require.Equal(t, "INFO", cfg.LogLevel)
	require.Equal(t, "64MB", cfg.MaxBufferSize)
	require.Equal(t, uint64(64_000_000), cfg.MaxBufferBytes())
	require.Equal(t, "main", cfg.Buffers[0].Id)
	require.Equal(t, "other", cfg.Buffers[1].Id)
	require.Equal(t, "case-0", cfg.Cases[0].Id)
	require.Equal(t, CaseModeOrdered, cfg.Cases[0].Mode)
	require.Equal(t, CaseModeUnordered, cfg.Cases[1].Mode)
	require.NotNil(t, cfg.Cases[0].Expect)
	require.Equal(t, "0123456", *cfg.Cases[0].Expect)
	require.False(t, *cfg.Metrics.Enabled)

	require.Same(t, cfg.Buffers[0], cfg.GetBufferConfig(""))
	require.Same(t, cfg.Buffers[1], cfg.GetBufferConfig("other"))
	require.Nil(t, cfg.GetBufferConfig("missing"))
}

func TestLoadConfig_ExpandsEnv(t *testing.T) {
	t.Setenv("ADJCAT_TEST_DIR", "/data")
	t.Setenv("ADJCAT_TEST_LEVEL", "debug")

	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
logLevel: ${ADJCAT_TEST_LEVEL}
buffers:
  - id: env
    file: "${ADJCAT_TEST_DIR}/corpus.txt"
metrics:
  outputFile: "${ADJCAT_TEST_DIR}/metrics.prom"
`)

	cfg, err := LoadConfig(fs, path)
	require.NoError(t, err)
	require.Equal(t, "/data/corpus.txt", cfg.Buffers[0].File)
	require.Equal(t, "/data/metrics.prom", cfg.Metrics.OutputFile)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_KeepsBufferTextVerbatim(t *testing.T) {
	t.Setenv("ADJCAT_TEST_PRICE", "SHOULD-NOT-APPEAR")

	fs := afero.NewMemMapFs()
	path := writeConfig(t, fs, `
buffers:
  - text: "cost $5 each, ${ADJCAT_TEST_PRICE} or $ADJCAT_TEST_PRICE"
cases:
  - a: "[0:5]"
    b: "[5:]"
    expect: "cost $5 each, ${ADJCAT_TEST_PRICE} or $ADJCAT_TEST_PRICE"
`)

	cfg, err := LoadConfig(fs, path)
	require.NoError(t, err)
	require.Equal(t, "cost $5 each, ${ADJCAT_TEST_PRICE} or $ADJCAT_TEST_PRICE", cfg.Buffers[0].Text)
	require.Equal(t, cfg.Buffers[0].Text, *cfg.Cases[0].Expect)
}

func TestLoadConfig_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadConfig(fs, "missing.yaml")
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeConfig(t, fs, "invalid yaml")
	_, err = LoadConfig(fs, path)
	require.True(t, HasErrorCode(err, ErrCodeInvalidConfig))
}

func TestConfig_Validate(t *testing.T) {
	str := func(s string) *string { return &s }
	enabled := true

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name:    "no buffers",
			cfg:     &Config{},
			wantErr: "at least one buffer",
		},
		{
			name: "duplicate buffer",
			cfg: &Config{Buffers: []*BufferConfig{
				{Id: "a", Text: "x"}, {Id: "a", Text: "y"},
			}},
			wantErr: "more than once",
		},
		{
			name: "text and file",
			cfg: &Config{Buffers: []*BufferConfig{
				{Id: "a", Text: "x", File: "f"},
			}},
			wantErr: "both text and file",
		},
		{
			name: "unknown buffer",
			cfg: &Config{
				Buffers: []*BufferConfig{{Id: "a", Text: "x"}},
				Cases:   []*CaseConfig{{Id: "c", A: "b[0:1]", B: "[1:1]"}},
			},
			wantErr: "unknown buffer",
		},
		{
			name: "bad operand",
			cfg: &Config{
				Buffers: []*BufferConfig{{Id: "a", Text: "x"}},
				Cases:   []*CaseConfig{{Id: "c", A: "0-1", B: "[1:1]"}},
			},
			wantErr: "invalid operand",
		},
		{
			name: "bad mode",
			cfg: &Config{
				Buffers: []*BufferConfig{{Id: "a", Text: "x"}},
				Cases:   []*CaseConfig{{Id: "c", A: "[0:1]", B: "[1:1]", Mode: "sideways"}},
			},
			wantErr: "invalid mode",
		},
		{
			name: "both expectations",
			cfg: &Config{
				Buffers: []*BufferConfig{{Id: "a", Text: "x"}},
				Cases: []*CaseConfig{{
					Id: "c", A: "[0:1]", B: "[1:1]", Mode: CaseModeOrdered,
					Expect: str("x"), ExpectError: ErrCodeNotAdjacent,
				}},
			},
			wantErr: "both expect and expectError",
		},
		{
			name: "bad max buffer size",
			cfg: &Config{
				MaxBufferSize: "lots",
				Buffers:       []*BufferConfig{{Id: "a", Text: "x"}},
			},
			wantErr: "maxBufferSize",
		},
		{
			name: "metrics without output",
			cfg: &Config{
				Buffers: []*BufferConfig{{Id: "a", Text: "x"}},
				Metrics: &MetricsConfig{Enabled: &enabled},
			},
			wantErr: "metrics.outputFile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			require.True(t, HasErrorCode(err, ErrCodeInvalidConfig))
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
