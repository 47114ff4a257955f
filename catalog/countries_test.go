package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCountries = `countryiso3,country,directory
afg,Afghanistan,wfp-food-prices-for-afghanistan
SYR,Syrian Arab Republic,wfp-food-prices-for-syrian-arab-republic
AFG,Afghanistan,
,,
YEM,Yemen,wfp-food-prices-for-yemen
`

func TestLoadCountryList(t *testing.T) {
	l, err := LoadCountryList(strings.NewReader(testCountries))
	assert.NoError(t, err)
	assert.Len(t, l.Entries, 4)
	assert.Equal(t, []string{"AFG", "SYR", "YEM"}, l.ISOCodes())
	assert.Equal(t, []string{
		"wfp-food-prices-for-afghanistan",
		"wfp-food-prices-for-syrian-arab-republic",
		"wfp-food-prices-for-yemen",
	}, l.Directories())
}

func TestLoadCountryListOnlyISO(t *testing.T) {
	l, err := LoadCountryList(strings.NewReader("countryiso3\nAFG\nMLI\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"AFG", "MLI"}, l.ISOCodes())
	assert.Empty(t, l.Directories())
}

func TestLoadCountryListWithByteOrderMark(t *testing.T) {
	l, err := LoadCountryList(strings.NewReader("\ufeff" + testCountries))
	assert.NoError(t, err)
	assert.Equal(t, []string{"AFG", "SYR", "YEM"}, l.ISOCodes())
	assert.True(t, l.HasDirectory("wfp-food-prices-for-yemen"))
}

func TestLoadCountryListMissingColumn(t *testing.T) {
	_, err := LoadCountryList(strings.NewReader("iso,directory\nAFG,x\n"))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestCheckDirectory(t *testing.T) {
	l, err := LoadCountryList(strings.NewReader(testCountries))
	assert.NoError(t, err)

	assert.True(t, l.HasDirectory("wfp-food-prices-for-yemen"))
	assert.NoError(t, l.CheckDirectory("wfp-food-prices-for-yemen"))

	err = l.CheckDirectory("wfp-food-prices-for-atlantis")
	assert.True(t, errors.Is(err, ErrDatasetNotListed))
}
