package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-simulator/internal/core"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"editor,4,2",
		"broken,3",
		"",
		"compiler, 7, 1",
		"shell,x,2",
		"backup,2,15",
	}, "\n")

	processes, skipped, err := Parse(strings.NewReader(input), core.FIFO)
	require.NoError(t, err)

	assert.Equal(t, []core.Process{
		{ID: 1, Name: "editor", Duration: 4, Arrival: 2},
		{ID: 2, Name: "compiler", Duration: 7, Arrival: 1},
		{ID: 3, Name: "backup", Duration: 2, Arrival: 15},
	}, processes)

	require.Len(t, skipped, 2)
	for _, err := range skipped {
		assert.ErrorIs(t, err, core.ErrMalformedRecord)
	}
	var malformed *core.MalformedRecordError
	require.ErrorAs(t, skipped[0], &malformed)
	assert.Equal(t, 2, malformed.Line)
	require.ErrorAs(t, skipped[1], &malformed)
	assert.Equal(t, 5, malformed.Line)
}

func TestParse_QuotesOnlyAffectTheirLine(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []string
		wantSkipped []string
	}{
		{
			name:        "stray leading quote",
			input:       "\"editor,4,2\nshell,1,2\nP,10,1\n",
			want:        []string{"\"editor", "shell", "P"},
			wantSkipped: nil,
		},
		{
			name:        "quote inside name",
			input:       "O\"Brien,4,2\nshell,1,2\n",
			want:        []string{"O\"Brien", "shell"},
			wantSkipped: nil,
		},
		{
			name:        "unterminated quote on a malformed line",
			input:       "\"broken,x\nshell,1,2\nP,10,1\n",
			want:        []string{"shell", "P"},
			wantSkipped: []string{"\"broken,x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processes, skipped, err := Parse(strings.NewReader(tt.input), core.FIFO)
			require.NoError(t, err)

			names := make([]string, 0, len(processes))
			for _, p := range processes {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)

			texts := make([]string, 0, len(skipped))
			for _, err := range skipped {
				var malformed *core.MalformedRecordError
				require.ErrorAs(t, err, &malformed)
				texts = append(texts, malformed.Text)
			}
			if tt.wantSkipped == nil {
				assert.Empty(t, texts)
			} else {
				assert.Equal(t, tt.wantSkipped, texts)
			}
		})
	}
}

func TestParse_Priority(t *testing.T) {
	input := "backup,2,15,5\nshell,1,2\n"

	processes, skipped, err := Parse(strings.NewReader(input), core.Priority)
	require.NoError(t, err)

	require.Len(t, processes, 1)
	require.NotNil(t, processes[0].Priority)
	assert.Equal(t, 5, *processes[0].Priority)
	require.Len(t, skipped, 1)
	assert.ErrorIs(t, skipped[0], core.ErrInvalidProcess)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		algorithm core.Algorithm
		want      core.Process
		wantErr   bool
	}{
		{
			name:      "plain",
			line:      "editor,4,2",
			algorithm: core.SJF,
			want:      core.Process{Name: "editor", Duration: 4, Arrival: 2},
		},
		{
			name:      "with priority",
			line:      "backup,2,15,5",
			algorithm: core.Priority,
			want:      core.Process{Name: "backup", Duration: 2, Arrival: 15, Priority: core.IntPtr(5)},
		},
		{name: "too few fields", line: "editor,4", algorithm: core.FIFO, wantErr: true},
		{name: "too many fields", line: "editor,4,2,1,9", algorithm: core.FIFO, wantErr: true},
		{name: "missing priority", line: "editor,4,2", algorithm: core.Priority, wantErr: true},
		{name: "not an integer", line: "editor,4.5,2", algorithm: core.FIFO, wantErr: true},
		{name: "empty name", line: ",4,2", algorithm: core.FIFO, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line, tt.algorithm)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidProcess)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRecord(t *testing.T) {
	p := core.Process{Name: "backup", Duration: 2, Arrival: 15, Priority: core.IntPtr(5)}

	record, err := FormatRecord(p, core.Priority)
	require.NoError(t, err)
	assert.Equal(t, "backup,2,15,5\n", string(record))

	record, err = FormatRecord(p, core.RoundRobin)
	require.NoError(t, err)
	assert.Equal(t, "backup,2,15\n", string(record))

	record, err = FormatRecord(core.Process{Name: `O"Brien`, Duration: 4, Arrival: 2}, core.FIFO)
	require.NoError(t, err)
	assert.Equal(t, "O\"Brien,4,2\n", string(record))
	parsed, err := ParseLine(string(record), core.FIFO)
	require.NoError(t, err)
	assert.Equal(t, `O"Brien`, parsed.Name)

	_, err = FormatRecord(core.Process{Name: "a,b", Duration: 1, Arrival: 1}, core.FIFO)
	assert.ErrorIs(t, err, core.ErrInvalidProcess)
}
