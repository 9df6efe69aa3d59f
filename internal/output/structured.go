package output

import (
	"bytes"
	"encoding/csv"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/nlpay/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the flattened report as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PaycheckResult) ([]byte, error) {
	report := NewReport(result)
	if j.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// YAMLFormatter renders the flattened report as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.PaycheckResult) ([]byte, error) {
	return yaml.Marshal(NewReport(result))
}

// CSVFormatter writes one key,value row per amount in the stable snapshot order
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.PaycheckResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"key", "value"}); err != nil {
		return nil, err
	}
	snapshot := result.Snapshot()
	for _, key := range domain.SnapshotKeys {
		if err := w.Write([]string{key, snapshot[key].StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
