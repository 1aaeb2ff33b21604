package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideamans/svgkit/pkg/svg"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name: "valid configuration",
			config: &Config{
				Class: "icon",
				Sets: []SetConfig{
					{Name: "default", Path: "/icons", Prefix: "icon"},
				},
			},
			wantErr: nil,
		},
		{
			name:    "no sets",
			config:  &Config{},
			wantErr: ErrNoSets,
		},
		{
			name: "missing set name",
			config: &Config{
				Sets: []SetConfig{
					{Path: "/icons"},
				},
			},
			wantErr: ErrSetNameRequired,
		},
		{
			name: "missing set path",
			config: &Config{
				Sets: []SetConfig{
					{Name: "default"},
				},
			},
			wantErr: ErrSetPathRequired,
		},
		{
			name: "duplicate set name",
			config: &Config{
				Sets: []SetConfig{
					{Name: "default", Path: "/a"},
					{Name: "default", Path: "/b"},
				},
			},
			wantErr: ErrDuplicateSetName,
		},
		{
			name: "filter references unknown set",
			config: &Config{
				Sets: []SetConfig{
					{Name: "default", Path: "/icons"},
				},
				Filters: map[string][]string{"brands": {"github"}},
			},
			wantErr: ErrFilterUnknownSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Apply(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "camera.svg"), []byte("<svg></svg>"), 0644))

	cfg := &Config{
		Class: "icon",
		Sets: []SetConfig{
			{Name: "default", Path: dir, Prefix: "icon", Class: "set-class"},
		},
		Filters: map[string][]string{"default": {"camera"}},
	}

	f := svg.New(svg.Options{Class: cfg.Class})
	defer f.Close()
	cfg.Apply(f)

	sets := f.All()
	require.Len(t, sets, 1)
	assert.Equal(t, "default", sets[0].Name)
	assert.Equal(t, "icon", sets[0].Prefix)

	files, err := f.GetFiles("default")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "camera", files[0].Name)

	icon, err := f.Svg(context.Background(), "icon-camera", "", nil)
	require.NoError(t, err)
	class, _ := icon.Attributes().Get("class")
	assert.Equal(t, "icon set-class", class)
}
