package config

type YAMLConfig struct {
	Output YAMLOutput `yaml:"output"`
}

type YAMLOutput struct {
	ScientificDigits *int   `yaml:"scientific_digits"`
	Format           string `yaml:"format"`
}
