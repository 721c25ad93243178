package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	BaseURL     string
	From        *time.Time
	To          *time.Time
	SortBy      string
	Name        string
	Select      *int64
	Interactive bool
	NoBanner    bool
	ReportName  string
	ReportType  []string
	Dir         string
	S3Bucket    string
	S3Prefix    string
	AWSProfile  string
	AWSRegion   string
}
