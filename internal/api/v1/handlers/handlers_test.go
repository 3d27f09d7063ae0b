package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataops/awsr/internal/provider"
	"github.com/strataops/awsr/internal/types"
	"github.com/strataops/awsr/internal/validation"
)

type fakeBucketService struct {
	result *types.CreationResult
	err    error

	gotName   string
	gotRegion string
}

func (f *fakeBucketService) CreateBucket(_ context.Context, bucketName, region string) (*types.CreationResult, error) {
	f.gotName = bucketName
	f.gotRegion = region
	return f.result, f.err
}

type fakeInstanceService struct {
	result *types.CreationResult
	err    error

	gotCount int
}

func (f *fakeInstanceService) CreateInstances(_ context.Context, _, _, _ string, count int, _ string) (*types.CreationResult, error) {
	f.gotCount = count
	return f.result, f.err
}

func newTestApp(bucketSvc BucketCreator, instanceSvc InstanceCreator) *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/s3", NewS3Handler(bucketSvc).CreateBucket)
	app.Post("/api/v1/ec2", NewEC2Handler(instanceSvc).CreateInstances)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, *types.CreationResult) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result types.CreationResult
	require.NoError(t, json.Unmarshal(raw, &result))
	return resp, &result
}

func TestCreateBucketEndpointSuccess(t *testing.T) {
	bucketSvc := &fakeBucketService{
		result: &types.CreationResult{
			Success:    true,
			BucketName: "my-bucket",
			Region:     "us-east-1",
			Message:    "Successfully created S3 bucket 'my-bucket' in region 'us-east-1'",
		},
	}
	app := newTestApp(bucketSvc, &fakeInstanceService{})

	resp, result := postJSON(t, app, "/api/v1/s3", types.CreateBucketRequest{
		BucketName: "my-bucket",
		Region:     "us-east-1",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, result.Success)
	assert.Equal(t, "my-bucket", bucketSvc.gotName)
	assert.Equal(t, "us-east-1", bucketSvc.gotRegion)
}

func TestCreateBucketEndpointMissingFields(t *testing.T) {
	app := newTestApp(&fakeBucketService{}, &fakeInstanceService{})

	resp, result := postJSON(t, app, "/api/v1/s3", map[string]string{"region": "us-east-1"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "bucket_name is required")
}

func TestCreateBucketEndpointProviderFailureStillReturns200(t *testing.T) {
	bucketSvc := &fakeBucketService{
		result: types.Failure("BucketAlreadyExists",
			"Bucket 'taken' already exists and is owned by another account"),
	}
	app := newTestApp(bucketSvc, &fakeInstanceService{})

	resp, result := postJSON(t, app, "/api/v1/s3", types.CreateBucketRequest{
		BucketName: "taken",
		Region:     "us-east-1",
	})

	// Provider-side failures are signaled via the body, not the status code
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, result.Success)
	assert.Equal(t, "BucketAlreadyExists", result.Error)
}

func TestCreateBucketEndpointCredentialsError(t *testing.T) {
	bucketSvc := &fakeBucketService{
		err: fmt.Errorf("%w: no EC2 IMDS role found", provider.ErrNoCredentials),
	}
	app := newTestApp(bucketSvc, &fakeInstanceService{})

	resp, result := postJSON(t, app, "/api/v1/s3", types.CreateBucketRequest{
		BucketName: "my-bucket",
		Region:     "us-east-1",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "CredentialsError", result.Error)
}

func TestCreateInstancesEndpointSuccess(t *testing.T) {
	instanceSvc := &fakeInstanceService{
		result: &types.CreationResult{
			Success:     true,
			InstanceIDs: []string{"i-1234567890abcdef0", "i-0987654321fedcba0"},
			Count:       2,
			Region:      "us-east-1",
		},
	}
	app := newTestApp(&fakeBucketService{}, instanceSvc)

	resp, result := postJSON(t, app, "/api/v1/ec2", types.CreateInstancesRequest{
		ImageID:      "ami-12345678",
		InstanceType: "t2.micro",
		KeyName:      "test-key",
		Count:        2,
		Region:       "us-east-1",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, result.Success)
	assert.Len(t, result.InstanceIDs, 2)
	assert.Equal(t, 2, instanceSvc.gotCount)
}

func TestCreateInstancesEndpointDefaultsCount(t *testing.T) {
	instanceSvc := &fakeInstanceService{result: &types.CreationResult{Success: true}}
	app := newTestApp(&fakeBucketService{}, instanceSvc)

	resp, _ := postJSON(t, app, "/api/v1/ec2", map[string]string{
		"image_id":      "ami-12345678",
		"instance_type": "t2.micro",
		"key_name":      "test-key",
		"region":        "us-east-1",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, instanceSvc.gotCount)
}

func TestCreateInstancesEndpointMissingFields(t *testing.T) {
	app := newTestApp(&fakeBucketService{}, &fakeInstanceService{})

	resp, result := postJSON(t, app, "/api/v1/ec2", map[string]string{
		"image_id": "ami-12345678",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "instance_type is required")
}

func TestCreateInstancesEndpointValidationErrorFromService(t *testing.T) {
	instanceSvc := &fakeInstanceService{
		err: &validation.MissingParamsError{Missing: []string{"image_id"}},
	}
	app := newTestApp(&fakeBucketService{}, instanceSvc)

	resp, result := postJSON(t, app, "/api/v1/ec2", types.CreateInstancesRequest{
		ImageID:      "ami-12345678",
		InstanceType: "t2.micro",
		KeyName:      "test-key",
		Count:        1,
		Region:       "us-east-1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ValidationError", result.Error)
}
