package ha

import (
	"strings"

	"github.com/vk/topoconf/internal/configuration"
)

// oozieZKServiceMarkers are the ZooKeeper-coordination service classes whose
// presence in oozie.services.ext activates Oozie HA.
var oozieZKServiceMarkers = []string{
	"org.apache.oozie.service.ZKLocksService",
	"org.apache.oozie.service.ZKXLogStreamingService",
	"org.apache.oozie.service.ZKJobsConcurrencyService",
	"org.apache.oozie.service.ZKUUIDService",
}

// OozieHAEnabled reports whether Oozie server HA is active. While active,
// Oozie server address properties resolve with multi-host instead of
// single-host semantics.
func OozieHAEnabled(cfg *configuration.Configuration) bool {
	ext, ok := cfg.Get("oozie-site", "oozie.services.ext")
	if !ok {
		return false
	}
	for _, marker := range oozieZKServiceMarkers {
		if strings.Contains(ext, marker) {
			return true
		}
	}
	return false
}
