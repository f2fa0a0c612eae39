package ha

import (
	"context"
	"strings"

	"github.com/vk/topoconf/internal/configuration"
	"github.com/vk/topoconf/internal/registry"
	"github.com/vk/topoconf/internal/updater"
)

// EscapedComma separates multiple thrift URIs inside a single sub-property of
// the Hive "properties" blob, where a bare comma already separates the
// sub-properties themselves. The escaping must be reproduced exactly.
const EscapedComma = `\,`

const (
	hiveSite    = "hive-site"
	webhcatSite = "webhcat-site"

	templetonHivePropertiesKey = "templeton.hive.properties"
	metastoreURIsSubKey        = "hive.metastore.uris"
)

// HiveHAEnabled reports whether Hive Metastore/Server2 HA is active: either
// dynamic service discovery is switched on, or the metastore URI list already
// names more than one thrift endpoint.
func HiveHAEnabled(cfg *configuration.Configuration) bool {
	if v, ok := cfg.Get(hiveSite, "hive.server2.support.dynamic.service.discovery"); ok && v == "true" {
		return true
	}
	if uris, ok := cfg.Get(hiveSite, "hive.metastore.uris"); ok {
		if strings.Count(uris, "thrift://") > 1 {
			return true
		}
	}
	return false
}

// IsTempletonHiveProperties reports whether a registry entry is the Hive
// properties blob, which needs the escaped-comma convention in both
// directions regardless of whether HA is active.
func IsTempletonHiveProperties(e registry.Entry) bool {
	return e.ConfigType == webhcatSite && e.Key == templetonHivePropertiesKey
}

// ResolveTempletonHiveProperties rewrites the hive.metastore.uris
// sub-property of the blob with multi-host semantics over the escaped-comma
// separator, leaving every other sub-property byte-identical.
func ResolveTempletonHiveProperties(ctx context.Context, res updater.Resolution, value string, export bool) (updater.ExportResult, error) {
	subProps := splitSubProperties(value)

	for i, sp := range subProps {
		key, uris, ok := strings.Cut(sp, "=")
		if !ok || strings.TrimSpace(key) != metastoreURIsSubKey {
			continue
		}

		res.Separator = EscapedComma
		if export {
			result, err := updater.ForBlueprintExport(ctx, registry.MultiHost, res, uris)
			if err != nil {
				return updater.ExportResult{}, err
			}
			subProps[i] = key + "=" + result.Value
		} else {
			resolved, err := updater.ForClusterCreate(ctx, registry.MultiHost, res, uris)
			if err != nil {
				return updater.ExportResult{}, err
			}
			subProps[i] = key + "=" + resolved
		}
	}

	return updater.ExportResult{Value: strings.Join(subProps, ",")}, nil
}

// splitSubProperties splits the blob on bare commas while keeping
// backslash-escaped commas inside a sub-property value intact.
func splitSubProperties(value string) []string {
	var out []string
	var current strings.Builder
	for i := 0; i < len(value); i++ {
		if value[i] == ',' && (i == 0 || value[i-1] != '\\') {
			out = append(out, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(value[i])
	}
	out = append(out, current.String())
	return out
}
