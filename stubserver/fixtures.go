package stubserver

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the YAML seed state for the stub.
type Fixtures struct {
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	SkillAreas []struct {
		Name   string   `yaml:"name"`
		Skills []string `yaml:"skills"`
	} `yaml:"skill_areas"`
	Developers []struct {
		Name                string   `yaml:"name"`
		Email               string   `yaml:"email"`
		Role                string   `yaml:"role"`
		GraduationDate      string   `yaml:"graduation_date"`
		IndustryExperience  int      `yaml:"industry_experience"`
		EmploymentStartDate string   `yaml:"employment_start_date"`
		IsAvailable         bool     `yaml:"is_available"`
		Skills              []string `yaml:"skills"`
	} `yaml:"developers"`
	Categories []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		UseCases    []string `yaml:"use_cases"`
		Skills      []string `yaml:"skills"`
	} `yaml:"categories"`
}

// LoadFixtures reads a fixtures file, falling back to the embedded defaults
// when path is empty.
func LoadFixtures(path string) (Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return Fixtures{}, err
		}
		data = fileData
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return Fixtures{}, err
	}
	return fixtures, nil
}

// seed loads fixture state into the store. Skill names double as the lookup
// key when wiring developers and categories to skills.
func (s *store) seed(fixtures Fixtures) error {
	if err := s.setAdmin(fixtures.Admin.Email, fixtures.Admin.Password); err != nil {
		return err
	}

	skillsByName := make(map[string]int64)
	for _, area := range fixtures.SkillAreas {
		areaID := s.nextID()
		s.skillAreas[areaID] = &skillAreaRecord{ID: areaID, Name: area.Name, CreatedAt: now()}
		for _, name := range area.Skills {
			skillID := s.nextID()
			s.skills[skillID] = &skillRecord{ID: skillID, Name: name, AreaID: areaID}
			skillsByName[name] = skillID
		}
	}

	for _, dev := range fixtures.Developers {
		devID := s.nextID()
		record := &developerRecord{
			ID:                  devID,
			Name:                dev.Name,
			Email:               dev.Email,
			Role:                dev.Role,
			GraduationDate:      dev.GraduationDate,
			IndustryExperience:  dev.IndustryExperience,
			EmploymentStartDate: dev.EmploymentStartDate,
			IsAvailable:         dev.IsAvailable,
			CreatedAt:           now(),
			LastUpdated:         now(),
		}
		for _, name := range dev.Skills {
			if skillID, ok := skillsByName[name]; ok {
				record.SkillIDs = append(record.SkillIDs, skillID)
			}
		}
		s.developers[devID] = record
	}

	for _, category := range fixtures.Categories {
		categoryID := s.nextID()
		record := &categoryRecord{
			ID:          categoryID,
			Name:        category.Name,
			Description: category.Description,
			UseCases:    append([]string{}, category.UseCases...),
		}
		for _, name := range category.Skills {
			if skillID, ok := skillsByName[name]; ok {
				record.SkillIDs = append(record.SkillIDs, skillID)
			}
		}
		s.categories[categoryID] = record
	}

	return nil
}
