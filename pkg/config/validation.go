package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and the rules that span several sections.
// Tag failures are reported as "Section.Field failed 'tag' (got value)".
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return err
	}

	var errs []error
	errs = append(errs, validateTransport(&cfg.Transport)...)
	errs = append(errs, validateRecorder(&cfg.Recorder)...)
	errs = append(errs, validatePorts(cfg)...)
	return errors.Join(errs...)
}

func formatFieldError(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.Namespace(), "Config.")
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed '%s=%s' (got %v)", ns, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed '%s' (got %v)", ns, fe.Tag(), fe.Value())
}

func validateTransport(t *TransportConfig) []error {
	var errs []error
	if t.MaxPDUSize > MaxPDUSize {
		errs = append(errs, fmt.Errorf("transport.max_pdu_size %s exceeds the %s protocol limit", t.MaxPDUSize, MaxPDUSize))
	}
	if t.MaxPDUSize != 0 && t.MaxPDUSize < 12 {
		errs = append(errs, fmt.Errorf("transport.max_pdu_size %s is smaller than a PDU header", t.MaxPDUSize))
	}
	if _, _, err := net.SplitHostPort(t.Listen); err != nil {
		errs = append(errs, fmt.Errorf("transport.listen %q: %w", t.Listen, err))
	}
	if t.MulticastGroup != "" {
		if t.Mode != "udp" {
			errs = append(errs, fmt.Errorf("transport.multicast_group requires udp mode, got %q", t.Mode))
		}
		if ip := net.ParseIP(t.MulticastGroup); ip == nil || !ip.IsMulticast() {
			errs = append(errs, fmt.Errorf("transport.multicast_group %q is not a multicast address", t.MulticastGroup))
		}
	}
	if t.Broadcast != "" {
		if _, _, err := net.SplitHostPort(t.Broadcast); err != nil {
			errs = append(errs, fmt.Errorf("transport.broadcast %q: %w", t.Broadcast, err))
		}
	}
	return errs
}

func validateRecorder(r *RecorderConfig) []error {
	if r.Enabled && !r.InMemory && r.Path == "" {
		return []error{errors.New("recorder.path is required when the recorder is enabled and not in memory")}
	}
	return nil
}

func validatePorts(cfg *Config) []error {
	if cfg.Metrics.Enabled && cfg.API.IsEnabled() && cfg.Metrics.Port == cfg.API.Port {
		return []error{fmt.Errorf("metrics.port and api.port are both %d", cfg.API.Port)}
	}
	return nil
}
