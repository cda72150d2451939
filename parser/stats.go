package parser

import "fmt"

// DocumentStats contains statistical information about a parsed document.
type DocumentStats struct {
	PathCount      int `json:"path_count" yaml:"path_count"`
	OperationCount int `json:"operation_count" yaml:"operation_count"`
	SchemaCount    int `json:"schema_count" yaml:"schema_count"`
}

// GetDocumentStats counts paths, operations and component schemas.
func GetDocumentStats(doc *Document) DocumentStats {
	var stats DocumentStats
	if doc == nil {
		return stats
	}
	stats.PathCount = doc.Paths.Len()
	for _, path := range doc.Paths.Keys() {
		if item, _ := doc.Paths.Get(path); item != nil {
			stats.OperationCount += len(item.Operations)
		}
	}
	if doc.Components != nil {
		stats.SchemaCount = doc.Components.Schemas.Len()
	}
	return stats
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
