package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c"},
		},
		{
			name:         "multiple allowed flags kept in order",
			args:         []string{"-a", "localhost:8080", "-c", "conf.json", "--other", "x"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-a", "localhost:8080", "-c", "conf.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantGlobal []string
		wantCmd    string
		wantRest   []string
	}{
		{
			name:       "globals then command",
			args:       []string{"-a", "host:1", "-k=tok", "seal", "-t", "Moonrise"},
			wantGlobal: []string{"-a", "host:1", "-k=tok"},
			wantCmd:    "seal",
			wantRest:   []string{"-t", "Moonrise"},
		},
		{
			name:       "command only",
			args:       []string{"seals"},
			wantGlobal: []string{},
			wantCmd:    "seals",
			wantRest:   []string{},
		},
		{
			name:       "no command",
			args:       []string{"-a", "host:1"},
			wantGlobal: []string{"-a", "host:1"},
			wantCmd:    "",
			wantRest:   nil,
		},
		{
			name:       "dangling flag",
			args:       []string{"-a"},
			wantGlobal: []string{"-a"},
			wantCmd:    "",
			wantRest:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, r := SplitCommand(tt.args)
			assert.Equal(t, tt.wantGlobal, g)
			assert.Equal(t, tt.wantCmd, c)
			assert.Equal(t, tt.wantRest, r)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFileFlag([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigFileFlag([]string{"-config", "/path/long.json"}))
	assert.Empty(t, ConfigFileFlag([]string{"-x", "1"}))
	assert.Equal(t, "/2.json", ConfigFileFlag([]string{"-c", "/1.json", "-config", "/2.json"}))
}

func TestJsonConfigFlags_UsesOSArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/path/short.json"}
	assert.Equal(t, "/path/short.json", JsonConfigFlags())
}
