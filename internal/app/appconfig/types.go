package appconfig

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	TracingExporterOTLP   = "otlp"
	TracingExporterStdout = "stdout"
)

type TracingExporters []string

func (e *TracingExporters) Decode(value string) error {
	*e = TracingExporters{}
	for _, name := range strings.Split(value, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name != TracingExporterOTLP && name != TracingExporterStdout {
			return fmt.Errorf("invalid tracing exporter: expect one of %s or %s, but got: %s", TracingExporterOTLP, TracingExporterStdout, name)
		}
		*e = append(*e, name)
	}
	*e = lo.Uniq(*e)
	return nil
}
