package getter

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// EnvPermittedFileRoots specifies a comma separated list of permitted folder roots
const EnvPermittedFileRoots = "MB_PERMITTED_ROOT_PATHS"

func pathPermitted(sourcePath string) bool {
	permittedFileRootEnv, ok := os.LookupEnv(EnvPermittedFileRoots)
	if !ok || permittedFileRootEnv == "" {
		return true
	}
	for _, root := range strings.Split(permittedFileRootEnv, ",") {
		if !path.IsAbs(root) {
			log.Printf("[WARN] permitted file root %s is not an absolute path - ignoring", root)
			continue
		}
		isSubElement, _ := subElem(root, sourcePath)
		if isSubElement {
			return true
		}
	}
	return false
}

// from https://stackoverflow.com/questions/28024731/check-if-given-path-is-a-subdirectory-of-another-in-golang
func subElem(parent, sub string) (bool, error) {
	up := ".." + string(os.PathSeparator)

	// path-comparisons using filepath.Abs don't work reliably according to docs (no unique representation).
	rel, err := filepath.Rel(parent, sub)
	if err != nil {
		return false, err
	}
	if !strings.HasPrefix(rel, up) && rel != ".." {
		return true, nil
	}
	return false, nil
}
