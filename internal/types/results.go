package types

// CreationResult is the normalized outcome of a single resource creation call.
// It is produced once per invocation and never mutated. The JSON field names
// match the wire format consumed by existing API callers.
type CreationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`

	// Object-storage fields
	BucketName string `json:"bucket_name,omitempty"`
	Location   string `json:"location,omitempty"`

	// Compute fields
	InstanceIDs  []string `json:"instance_ids,omitempty"`
	Count        int      `json:"count,omitempty"`
	ImageID      string   `json:"image_id,omitempty"`
	InstanceType string   `json:"instance_type,omitempty"`
	KeyName      string   `json:"key_name,omitempty"`

	// Region the creation resolved to
	Region string `json:"region,omitempty"`
}

// Failure builds a failed CreationResult with the given error tag and message
func Failure(tag, message string) *CreationResult {
	return &CreationResult{
		Success: false,
		Error:   tag,
		Message: message,
	}
}
