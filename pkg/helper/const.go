package helper

const (
	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"

	// V1 api version prefix
	V1 = "/v1"

	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"

	// WORKDIR const for setting env workdir
	WORKDIR = "WORKDIR"
)
