package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opencircuit/lvscheck/device"
)

// DefaultContactFamilies returns the six contact families spec §4.3.2
// names, in the order the original passes them to find_cont/find_cont_E:
// ohmic taps (CN, CP), equipotential taps (CNE, CPE), inter-metal vias
// (CM), and the polysilicon contact (CSI).
func DefaultContactFamilies() []device.ContactFamily {
	return []device.ContactFamily{
		{Name: "CN", ContactLayer: "CNA", EnclosingLayer: "NA", UpperLayer: "M1", Equipotential: false},
		{Name: "CP", ContactLayer: "CPA", EnclosingLayer: "NA", UpperLayer: "M1", Equipotential: false},
		{Name: "CNE", ContactLayer: "CNE", EnclosingLayer: "NA", UpperLayer: "M1", Equipotential: true},
		{Name: "CPE", ContactLayer: "CPE", EnclosingLayer: "NA", UpperLayer: "M1", Equipotential: true},
		{Name: "CM", ContactLayer: "CM1", EnclosingLayer: "M1", UpperLayer: "M2", Equipotential: false},
		{Name: "CSI", ContactLayer: "CSI", EnclosingLayer: "SI", UpperLayer: "M1", Equipotential: false},
	}
}

// contactFamiliesFile is the on-disk shape of a contact-family override
// document, e.g.:
//
//	families:
//	  - name: CN
//	    contact_layer: CNA
//	    enclosing_layer: NA
//	    upper_layer: M1
//	    equipotential: false
type contactFamiliesFile struct {
	Families []struct {
		Name           string `yaml:"name"`
		ContactLayer   string `yaml:"contact_layer"`
		EnclosingLayer string `yaml:"enclosing_layer"`
		UpperLayer     string `yaml:"upper_layer"`
		Equipotential  bool   `yaml:"equipotential"`
	} `yaml:"families"`
}

// LoadContactFamilies reads a YAML contact-family table from path,
// letting a caller rename layers or add a process's extra via family
// without recompiling (spec §A.3). The file need not be exhaustive: any
// family DefaultContactFamilies lists and the file omits is NOT included
// in the result -- callers who want to extend rather than replace should
// append DefaultContactFamilies() themselves.
func LoadContactFamilies(path string) ([]device.ContactFamily, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("extract: reading contact family file: %w", err)
	}
	var doc contactFamiliesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("extract: parsing contact family file: %w", err)
	}

	out := make([]device.ContactFamily, 0, len(doc.Families))
	for _, f := range doc.Families {
		out = append(out, device.ContactFamily{
			Name:           f.Name,
			ContactLayer:   f.ContactLayer,
			EnclosingLayer: f.EnclosingLayer,
			UpperLayer:     f.UpperLayer,
			Equipotential:  f.Equipotential,
		})
	}

	return out, nil
}
