package batch

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/erpc/adjcat/adjacent"
	"github.com/erpc/adjcat/common"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// LoadBuffers builds one adjacent.Buffer per configured buffer. File contents
// are wrapped without a copy; the bytes are owned by the returned buffers.
// Files larger than maxFileBytes are rejected; 0 means no limit.
func LoadBuffers(logger *zerolog.Logger, fs afero.Fs, cfgs []*common.BufferConfig, maxFileBytes uint64) (map[string]*adjacent.Buffer, error) {
	buffers := make(map[string]*adjacent.Buffer, len(cfgs))
	for _, bc := range cfgs {
		var (
			buf *adjacent.Buffer
			err error
		)
		if bc.File != "" {
			if maxFileBytes > 0 {
				if info, statErr := fs.Stat(bc.File); statErr == nil && uint64(info.Size()) > maxFileBytes {
					return nil, common.NewErrInvalidConfig(fmt.Sprintf(
						"buffer '%s' file %s is %s, above the %s limit",
						bc.Id, bc.File, humanize.Bytes(uint64(info.Size())), humanize.Bytes(maxFileBytes),
					), nil)
				}
			}
			var data []byte
			data, err = afero.ReadFile(fs, bc.File)
			if err != nil {
				return nil, fmt.Errorf("failed to read buffer '%s' from %s: %w", bc.Id, bc.File, err)
			}
			buf, err = adjacent.NewBufferBytes(data)
		} else {
			buf, err = adjacent.NewBuffer(bc.Text)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load buffer '%s': %w", bc.Id, err)
		}

		logger.Debug().Object("buffer", bc).Str("size", humanize.Bytes(uint64(buf.Len()))).Msg("loaded buffer")
		buffers[bc.Id] = buf
	}
	return buffers, nil
}
