package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		in      string
		want    Operand
		wantErr bool
	}{
		{in: "main[0:5]", want: Operand{BufferId: "main", Start: 0, End: 5}},
		{in: "[5:7]", want: Operand{Start: 5, End: 7}},
		{in: "5:7", want: Operand{Start: 5, End: 7}},
		{in: " other[ 2 : ] ", want: Operand{BufferId: "other", Start: 2, End: -1}},
		{in: "[:3]", want: Operand{Start: 0, End: 3}},
		{in: "[:]", want: Operand{Start: 0, End: -1}},
		{in: "[5:5]", want: Operand{Start: 5, End: 5}},
		{in: "main[0:5", wantErr: true},
		{in: "[05]", wantErr: true},
		{in: "[a:5]", wantErr: true},
		{in: "[-1:5]", wantErr: true},
		{in: "[7:5]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOperand(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOperand_Resolve(t *testing.T) {
	start, end := Operand{Start: 2, End: -1}.Resolve(10)
	require.Equal(t, 2, start)
	require.Equal(t, 10, end)

	start, end = Operand{Start: 2, End: 4}.Resolve(10)
	require.Equal(t, 2, start)
	require.Equal(t, 4, end)

	require.Equal(t, "main[2:]", Operand{BufferId: "main", Start: 2, End: -1}.String())
	require.Equal(t, "[0:5]", Operand{Start: 0, End: 5}.String())
}
