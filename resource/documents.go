package resource

import (
	"reflect"
	"strings"
)

// ServiceDocument is the base shape shared by every document instance.
type ServiceDocument struct {
	DocumentSelfLink         string `json:"documentSelfLink,omitempty"`
	DocumentKind             string `json:"documentKind,omitempty"`
	DocumentVersion          int64  `json:"documentVersion,omitempty"`
	DocumentUpdateTimeMicros int64  `json:"documentUpdateTimeMicros,omitempty"`
}

// DocumentPage is the paged listing result returned by factory resources.
type DocumentPage struct {
	DocumentLinks []string       `json:"documentLinks,omitempty"`
	Documents     map[string]any `json:"documents,omitempty"`
	DocumentCount int64          `json:"documentCount,omitempty"`
	NextPageLink  string         `json:"nextPageLink,omitempty"`
	PrevPageLink  string         `json:"prevPageLink,omitempty"`
}

// ServiceStat is a single named runtime statistic.
type ServiceStat struct {
	Name                 string  `json:"name,omitempty"`
	LatestValue          float64 `json:"latestValue,omitempty"`
	AccumulatedValue     float64 `json:"accumulatedValue,omitempty"`
	Version              int64   `json:"version,omitempty"`
	LastUpdateTimeMicros int64   `json:"lastUpdateMicrosUtc,omitempty"`
	Unit                 string  `json:"unit,omitempty"`
}

// ServiceStats is the full statistics document of one service instance.
type ServiceStats struct {
	ServiceDocument
	KindScope string                  `json:"kindScope,omitempty"`
	Entries   map[string]*ServiceStat `json:"entries,omitempty"`
}

// ServiceConfiguration describes a service instance's runtime configuration.
type ServiceConfiguration struct {
	ServiceDocument
	Options                   []string `json:"options,omitempty"`
	MaintenanceIntervalMicros int64    `json:"maintenanceIntervalMicros,omitempty"`
	OperationQueueLimit       int32    `json:"operationQueueLimit,omitempty"`
	EpochMicros               int64    `json:"epochMicros,omitempty"`
}

// ConfigUpdateRequest is the patch body accepted by the config sub-path.
type ConfigUpdateRequest struct {
	Kind                      string   `json:"kind,omitempty"`
	AddOptions                []string `json:"addOptions,omitempty"`
	RemoveOptions             []string `json:"removeOptions,omitempty"`
	MaintenanceIntervalMicros int64    `json:"maintenanceIntervalMicros,omitempty"`
	OperationQueueLimit       int32    `json:"operationQueueLimit,omitempty"`
}

// Subscriber identifies one notification target of a service.
type Subscriber struct {
	Reference              string `json:"reference,omitempty"`
	ReplayState            bool   `json:"replayState,omitempty"`
	UsePublicURI           bool   `json:"usePublicUri,omitempty"`
	NotificationLimit      int64  `json:"notificationLimit,omitempty"`
	DocumentExpirationTime int64  `json:"documentExpirationTimeMicros,omitempty"`
}

// SubscriptionState is the subscription document of one service instance.
type SubscriptionState struct {
	ServiceDocument
	Subscribers map[string]*Subscriber `json:"subscribers,omitempty"`
}

// ErrorResponse is the generic error body returned by every service.
type ErrorResponse struct {
	Message      string   `json:"message,omitempty"`
	MessageID    string   `json:"messageId,omitempty"`
	StatusCode   int      `json:"statusCode,omitempty"`
	ErrorCode    int      `json:"errorCode,omitempty"`
	StackTrace   []string `json:"stackTrace,omitempty"`
	DocumentKind string   `json:"documentKind,omitempty"`
}

// Kind builds the stable type identifier for a value's type: the full
// package path joined to the type name with a dot. Pointers are dereferenced
// first. For unnamed or builtin types only the type name is returned.
func Kind(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return KindOf(t)
}

// KindOf builds the stable type identifier for a reflect.Type.
func KindOf(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// ShortKind returns the bare type name of a kind identifier: everything
// after the final dot.
func ShortKind(kind string) string {
	if idx := strings.LastIndex(kind, "."); idx != -1 {
		return kind[idx+1:]
	}
	return kind
}
