// Package types defines the request and result shapes shared by the command
// and request surfaces.
package types

import "fmt"

// CreateBucketRequest is the JSON body accepted by the S3 endpoint
type CreateBucketRequest struct {
	BucketName string `json:"bucket_name"`
	Region     string `json:"region"`
}

// Validate performs the coarse endpoint-level check. The service layer
// re-validates with the full missing-parameter report.
func (r *CreateBucketRequest) Validate() error {
	if r.BucketName == "" {
		return fmt.Errorf("bucket_name is required")
	}
	if r.Region == "" {
		return fmt.Errorf("region is required")
	}
	return nil
}

// CreateInstancesRequest is the JSON body accepted by the EC2 endpoint
type CreateInstancesRequest struct {
	ImageID      string `json:"image_id"`
	InstanceType string `json:"instance_type"`
	KeyName      string `json:"key_name"`
	Count        int    `json:"count"`
	Region       string `json:"region"`
}

// Validate performs the coarse endpoint-level check
func (r *CreateInstancesRequest) Validate() error {
	if r.ImageID == "" {
		return fmt.Errorf("image_id is required")
	}
	if r.InstanceType == "" {
		return fmt.Errorf("instance_type is required")
	}
	if r.KeyName == "" {
		return fmt.Errorf("key_name is required")
	}
	if r.Region == "" {
		return fmt.Errorf("region is required")
	}
	return nil
}
