package picture

import (
	"blog/internal/core/domain/picture"
	"blog/internal/core/domain/user"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

func newName(format picture.Format) user.ImageFile {
	return user.ImageFile(fmt.Sprintf("%s.%s", strings.ReplaceAll(uuid.NewString(), "-", ""), format.Extension()))
}

// isManaged reports whether the name was generated by newName and may be removed.
func isManaged(name user.ImageFile) bool {
	if name == "" || name == user.DefaultImageFile {
		return false
	}
	return path.Base(string(name)) == string(name) && !strings.HasPrefix(string(name), ".")
}
