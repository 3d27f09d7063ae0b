package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBucketRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateBucketRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateBucketRequest{BucketName: "my-bucket", Region: "us-east-1"},
		},
		{
			name:    "missing bucket name",
			req:     CreateBucketRequest{Region: "us-east-1"},
			wantErr: "bucket_name is required",
		},
		{
			name:    "missing region",
			req:     CreateBucketRequest{BucketName: "my-bucket"},
			wantErr: "region is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCreateInstancesRequestValidate(t *testing.T) {
	valid := CreateInstancesRequest{
		ImageID:      "ami-12345678",
		InstanceType: "t2.micro",
		KeyName:      "test-key",
		Count:        1,
		Region:       "us-east-1",
	}
	assert.NoError(t, valid.Validate())

	missingKey := valid
	missingKey.KeyName = ""
	require.Error(t, missingKey.Validate())
	assert.Equal(t, "key_name is required", missingKey.Validate().Error())
}

func TestCreationResultWireFormat(t *testing.T) {
	result := CreationResult{
		Success:    true,
		Message:    "Successfully created S3 bucket 'my-bucket' in region 'us-east-1'",
		BucketName: "my-bucket",
		Region:     "us-east-1",
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Field names are part of the wire contract with existing callers
	assert.Contains(t, decoded, "success")
	assert.Contains(t, decoded, "message")
	assert.Contains(t, decoded, "bucket_name")
	assert.Contains(t, decoded, "region")
	assert.NotContains(t, decoded, "error")
	assert.NotContains(t, decoded, "instance_ids")
}

func TestFailureHelper(t *testing.T) {
	result := Failure("BucketAlreadyExists", "Bucket 'taken' already exists and is owned by another account")

	assert.False(t, result.Success)
	assert.Equal(t, "BucketAlreadyExists", result.Error)
	assert.NotEmpty(t, result.Message)
}
