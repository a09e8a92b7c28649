package mem

import (
	"log"
	"os"

	sigar "github.com/cloudfoundry/gosigar"
)

// ProcessMemoryMb returns the resident set size of this process in Mb,
// or 0 if it cannot be read.
func ProcessMemoryMb() float64 {
	mem := sigar.ProcMem{}
	if err := mem.Get(os.Getpid()); err != nil {
		log.Printf("[WARN] failed to read process memory: %v", err)
		return 0
	}
	return float64(mem.Resident) / (1024 * 1024)
}
