package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptionsDefaults(t *testing.T) {
	t.Parallel()

	got, err := ApplyOptions[GetModelOptions]()
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabase, got.Database)
	assert.Equal(t, DefaultCollection, got.Collection)
	assert.Empty(t, got.ModelID)
}

func TestApplyOptionsNoDefaultsForUserOps(t *testing.T) {
	t.Parallel()

	got, err := ApplyOptions[CreateUserOptions]()
	require.NoError(t, err)
	assert.Empty(t, got.Database)
}

func TestApplyOptionsOverrides(t *testing.T) {
	t.Parallel()

	got, err := ApplyOptions(
		WithDatabase[GetModelOptions]("experiments"),
		WithCollection[GetModelOptions]("vision"),
		WithModelID[GetModelOptions]("66daf3cae7e64e7bde7f46a0"),
	)
	require.NoError(t, err)
	assert.Equal(t, "experiments", got.Database)
	assert.Equal(t, "vision", got.Collection)
	assert.Equal(t, "66daf3cae7e64e7bde7f46a0", got.ModelID)
}

func TestApplyOptionsInvalid(t *testing.T) {
	t.Parallel()

	_, err := ApplyOptions(WithDatabase[ListModelsOptions](""))
	assert.Error(t, err)

	_, err = ApplyOptions(WithModelID[DeleteModelOptions](""))
	assert.Error(t, err)
}

func TestWithMetadata(t *testing.T) {
	t.Parallel()

	valid := ModelMetadata{
		ModelArchitecture: "transformer",
		ModelVersion:      1.2,
		ProjectName:       "chatbot",
	}

	tests := []struct {
		name    string
		meta    ModelMetadata
		wantErr string
	}{
		{name: "valid", meta: valid},
		{
			name:    "missing architecture",
			meta:    ModelMetadata{ModelVersion: 1, ProjectName: "p"},
			wantErr: "architecture",
		},
		{
			name:    "zero version",
			meta:    ModelMetadata{ModelArchitecture: "cnn", ProjectName: "p"},
			wantErr: "version",
		},
		{
			name:    "negative version",
			meta:    ModelMetadata{ModelArchitecture: "cnn", ModelVersion: -1, ProjectName: "p"},
			wantErr: "version",
		},
		{
			name:    "missing project",
			meta:    ModelMetadata{ModelArchitecture: "cnn", ModelVersion: 1},
			wantErr: "project",
		},
		{
			name: "digest supplied by caller",
			meta: ModelMetadata{
				ModelArchitecture: "cnn", ModelVersion: 1, ProjectName: "p",
				Digest: "abc",
			},
			wantErr: "digest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ApplyOptions(WithMetadata[StoreModelOptions](tt.meta))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.meta, got.Metadata)
		})
	}
}

func TestWithContent(t *testing.T) {
	t.Parallel()

	got, err := ApplyOptions(WithContent("model.bin", strings.NewReader("weights")))
	require.NoError(t, err)
	assert.Equal(t, "model.bin", got.Filename)
	assert.NotNil(t, got.Content)

	_, err = ApplyOptions(WithContent("", strings.NewReader("weights")))
	assert.Error(t, err)

	_, err = ApplyOptions(WithContent("model.bin", nil))
	assert.Error(t, err)
}

func TestWithUser(t *testing.T) {
	t.Parallel()

	got, err := ApplyOptions(
		WithUser[CreateUserOptions]("alice", "model_registry"),
		WithUserPassword("pw"),
		WithUserRole("readWrite"),
	)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "model_registry", got.Database)
	assert.Equal(t, "pw", got.Password)
	assert.Equal(t, "readWrite", got.Role)

	_, err = ApplyOptions(WithUser[DeleteUserOptions]("", "model_registry"))
	assert.Error(t, err)

	_, err = ApplyOptions(WithUser[DeleteUserOptions]("alice", ""))
	assert.Error(t, err)
}
