package models

import (
	"fmt"
	"net/url"
)

// Notification is the S3 change notification payload delivered to the
// handlers. Only the first record is consulted.
type Notification struct {
	Records []Record `json:"Records" validate:"required,min=1,dive"`
}

type Record struct {
	EventName string   `json:"eventName"`
	AWSRegion string   `json:"awsRegion"`
	S3        S3Entity `json:"s3"`
}

type S3Entity struct {
	Bucket Bucket `json:"bucket"`
	Object Object `json:"object"`
}

type Bucket struct {
	Name string `json:"name"`
}

type Object struct {
	Key  string `json:"key" validate:"required"`
	Size int64  `json:"size"`
}

// FirstObjectKey returns the object key of the first change record,
// decoded from the URL encoding S3 applies to notification keys.
func (n *Notification) FirstObjectKey() (string, error) {
	if len(n.Records) == 0 {
		return "", fmt.Errorf("notification has no records")
	}
	key, err := url.QueryUnescape(n.Records[0].S3.Object.Key)
	if err != nil {
		return "", fmt.Errorf("object key '%s' is not valid URL encoding: %w", n.Records[0].S3.Object.Key, err)
	}
	return key, nil
}
