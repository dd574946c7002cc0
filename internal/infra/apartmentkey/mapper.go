package apartmentkey

import (
	"os"
	"strings"

	"apartment-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// File layout:
//
//	apartments:
//	  6f1c...-uuid: seaside-loft
type mappingFile struct {
	Apartments map[string]string `yaml:"apartments"`
}

// Mapper resolves the key bookings are stored under. Apartments missing from the file use their catalog key.
type Mapper struct {
	keys map[uuid.UUID]string
}

func NewMapper(keys map[uuid.UUID]string) *Mapper {
	if keys == nil {
		keys = map[uuid.UUID]string{}
	}
	return &Mapper{keys: keys}
}

// Load reads the mapping file; an empty path yields a mapper that always falls back.
func Load(path string) (*Mapper, error) {
	if path == "" {
		return NewMapper(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read apartment key file")
	}
	return Parse(data)
}

func Parse(data []byte) (*Mapper, error) {
	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.Wrap(err, "failed to parse apartment key file")
	}

	keys := make(map[uuid.UUID]string, len(file.Apartments))
	for rawID, key := range file.Apartments {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid apartment id %q in key file", rawID)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, errs.Newf("empty booking key for apartment %s", id)
		}
		keys[id] = key
	}
	return NewMapper(keys), nil
}

func (m *Mapper) BookingKey(apartmentID uuid.UUID, catalogKey string) string {
	if key, ok := m.keys[apartmentID]; ok {
		return key
	}
	return catalogKey
}
