package middleware

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"workshoppro/internal/common"

	"github.com/labstack/echo/v4"
)

const (
	versionStatusActive     = "active"
	versionStatusDeprecated = "deprecated"
)

// APIVersion describes one mounted API version.
type APIVersion struct {
	Version    string     `json:"version"`
	Status     string     `json:"status"`
	SunsetDate *time.Time `json:"sunset_date,omitempty"`
	Message    string     `json:"message,omitempty"`
}

type VersionMiddleware struct {
	build    string
	versions map[string]APIVersion
}

// NewVersionMiddleware registers v1 as the current version. build is the
// server build reported in X-Server-Version.
func NewVersionMiddleware(build string) *VersionMiddleware {
	return &VersionMiddleware{
		build: build,
		versions: map[string]APIVersion{
			"v1": {Version: "v1", Status: versionStatusActive, Message: "Current stable API version"},
		},
	}
}

func (vm *VersionMiddleware) Deprecate(version, message string, sunset time.Time) {
	vm.versions[version] = APIVersion{Version: version, Status: versionStatusDeprecated, SunsetDate: &sunset, Message: message}
}

// VersionHeader adds version information to response headers
func (vm *VersionMiddleware) VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-API-Version", version)
			if vm.build != "" {
				h.Set("X-Server-Version", vm.build)
			}
			if ver, ok := vm.versions[version]; ok && ver.Status == versionStatusDeprecated && ver.SunsetDate != nil {
				h.Set("X-API-Deprecated", "true")
				h.Set("X-API-Sunset", ver.SunsetDate.Format(time.RFC3339))
				h.Set("Warning", `299 workshoppro "This API version is deprecated and will be removed on `+ver.SunsetDate.Format(time.DateOnly)+`"`)
			}
			return next(c)
		}
	}
}

// APIVersionResolver rejects requests for versions that are not mounted.
func (vm *VersionMiddleware) APIVersionResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			version := versionFromPath(c.Request().URL.Path)
			if version == "" {
				return next(c)
			}
			if _, ok := vm.versions[version]; !ok {
				return c.JSON(http.StatusNotFound, common.CreateErrorResponse("NOT_FOUND", "Unsupported API version", map[string]string{
					"supported_versions": strings.Join(vm.supported(), ", "),
				}))
			}
			c.Set("api_version", version)
			return next(c)
		}
	}
}

// versionFromPath returns "vN" for paths starting with /vN/ or equal to /vN.
func versionFromPath(path string) string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if len(seg) < 2 || seg[0] != 'v' {
		return ""
	}
	for _, r := range seg[1:] {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return seg
}

func (vm *VersionMiddleware) supported() []string {
	out := make([]string, 0, len(vm.versions))
	for v := range vm.versions {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
