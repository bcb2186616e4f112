package path

import (
	"strings"

	"github.com/google/uuid"
)

// idNamespace scopes instance identifiers produced by this package.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ukaji3/chartgeo-go"))

// InstanceID derives a stable identifier for gradient and filter references
// from caller configuration. Equal parts always give equal identifiers.
func InstanceID(parts ...string) string {
	name := strings.Join(parts, "\x00")
	return "cg-" + uuid.NewSHA1(idNamespace, []byte(name)).String()[:8]
}
