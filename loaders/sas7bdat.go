package loaders

import (
	"github.com/lophi-data/lophi/columnstore"
	"github.com/lophi-data/lophi/sas7bdat"
)

// loadSAS7BDAT delegates to the sas7bdat package's own one-shot loader;
// lo-phi never writes SAS7BDAT files (spec.md §9's explicit Non-goal).
func loadSAS7BDAT(path string) (*columnstore.Store, error) {
	return sas7bdat.Load(path)
}
