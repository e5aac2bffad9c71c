package escl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diitoo/esclscan/internal/escl"
)

const sampleCapabilities = `<?xml version="1.0" encoding="UTF-8"?>
<scan:ScannerCapabilities xmlns:scan="http://schemas.hp.com/imaging/escl/2011/05/03" xmlns:pwg="http://www.pwg.org/schemas/2010/12/sm">
  <pwg:Version>2.6</pwg:Version>
  <pwg:MakeAndModel>Example Scanner X100</pwg:MakeAndModel>
  <pwg:SerialNumber>SER123</pwg:SerialNumber>
  <scan:AdminURI>http://scanner.local/admin</scan:AdminURI>
  <scan:VendorExtension>opaque</scan:VendorExtension>
  <scan:Platen>
    <scan:PlatenInputCaps>
      <scan:MinWidth>8</scan:MinWidth>
      <scan:MaxWidth>2550</scan:MaxWidth>
      <scan:MinHeight>8</scan:MinHeight>
      <scan:MaxHeight>3508</scan:MaxHeight>
      <scan:VendorQuirk>1</scan:VendorQuirk>
      <scan:SettingProfiles>
        <scan:SettingProfile>
          <scan:ColorModes>
            <scan:ColorMode>RGB24</scan:ColorMode>
            <scan:ColorMode>Grayscale8</scan:ColorMode>
          </scan:ColorModes>
          <scan:DocumentFormats>
            <pwg:DocumentFormat>image/jpeg</pwg:DocumentFormat>
            <pwg:DocumentFormat>application/pdf</pwg:DocumentFormat>
          </scan:DocumentFormats>
          <scan:SupportedResolutions>
            <scan:DiscreteResolutions>
              <scan:DiscreteResolution>
                <scan:XResolution>75</scan:XResolution>
                <scan:YResolution>75</scan:YResolution>
              </scan:DiscreteResolution>
              <scan:DiscreteResolution>
                <scan:XResolution>150</scan:XResolution>
                <scan:YResolution>150</scan:YResolution>
              </scan:DiscreteResolution>
              <scan:DiscreteResolution>
                <scan:XResolution>300</scan:XResolution>
                <scan:YResolution>300</scan:YResolution>
              </scan:DiscreteResolution>
            </scan:DiscreteResolutions>
          </scan:SupportedResolutions>
        </scan:SettingProfile>
      </scan:SettingProfiles>
    </scan:PlatenInputCaps>
  </scan:Platen>
</scan:ScannerCapabilities>`

func sampleSizes() map[string]escl.Extent {
	return map[string]escl.Extent{
		"a4": {Width: 2480, Height: 3508},
		"a5": {Width: 1748, Height: 2480},
		"a3": {Width: 3508, Height: 4961}, // larger than the platen
	}
}

func TestParseCapabilities_RequiredCore(t *testing.T) {
	t.Parallel()

	caps, err := escl.ParseCapabilities([]byte(sampleCapabilities), sampleSizes())
	assert.NoError(t, err)

	assert.Equal(t, "2.6", caps.Version)
	assert.Equal(t, "Example Scanner X100", caps.MakeAndModel)
	assert.Equal(t, "SER123", caps.SerialNumber)
	assert.Equal(t, []string{"RGB24", "Grayscale8"}, caps.ColorModes)
	assert.Equal(t, []string{"image/jpeg", "application/pdf"}, caps.Formats)
	assert.Equal(t, []int{75, 150, 300}, caps.XResolutions)
	assert.Equal(t, []int{75, 150, 300}, caps.YResolutions)
	assert.Equal(t, 2550, caps.MaxWidth)
	assert.Equal(t, 3508, caps.MaxHeight)
	assert.Equal(t, escl.InputSourcePlaten, caps.InputSource)
}

func TestParseCapabilities_IgnoresVendorExtensions(t *testing.T) {
	t.Parallel()

	// The sample carries VendorExtension and VendorQuirk elements; a
	// tolerant parse keeps the core and drops them without error.
	caps, err := escl.ParseCapabilities([]byte(sampleCapabilities), sampleSizes())
	assert.NoError(t, err)
	assert.NotNil(t, caps)
}

func TestParseCapabilities_PaperSizesFitDevice(t *testing.T) {
	t.Parallel()

	caps, err := escl.ParseCapabilities([]byte(sampleCapabilities), sampleSizes())
	assert.NoError(t, err)

	assert.Contains(t, caps.PaperSizes, "a4")
	assert.Contains(t, caps.PaperSizes, "a5")
	assert.NotContains(t, caps.PaperSizes, "a3", "size larger than the platen must be dropped")

	assert.Equal(t, escl.Extent{Width: 2550, Height: 3508}, caps.PaperSizes[escl.PaperSizeMax])
}

func TestParseCapabilities_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := escl.ParseCapabilities([]byte(sampleCapabilities), sampleSizes())
	assert.NoError(t, err)
	second, err := escl.ParseCapabilities([]byte(sampleCapabilities), sampleSizes())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseCapabilities_NotXML(t *testing.T) {
	t.Parallel()

	_, err := escl.ParseCapabilities([]byte("not xml at all"), sampleSizes())

	var malformed *escl.MalformedCapabilitiesError
	assert.True(t, errors.As(err, &malformed))
}

func TestParseCapabilities_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	const noProfiles = `<?xml version="1.0"?>
<scan:ScannerCapabilities xmlns:scan="http://schemas.hp.com/imaging/escl/2011/05/03" xmlns:pwg="http://www.pwg.org/schemas/2010/12/sm">
  <pwg:Version>2.6</pwg:Version>
  <scan:Platen>
    <scan:PlatenInputCaps>
      <scan:MaxWidth>2550</scan:MaxWidth>
      <scan:MaxHeight>3508</scan:MaxHeight>
    </scan:PlatenInputCaps>
  </scan:Platen>
</scan:ScannerCapabilities>`

	_, err := escl.ParseCapabilities([]byte(noProfiles), sampleSizes())

	var malformed *escl.MalformedCapabilitiesError
	assert.True(t, errors.As(err, &malformed))
}

func TestMaxResolution_CommonAxisValues(t *testing.T) {
	t.Parallel()

	caps := &escl.DeviceCapabilities{
		XResolutions: []int{75, 150, 300, 600},
		YResolutions: []int{75, 150, 300},
	}

	assert.Equal(t, 300, caps.MaxResolution(), "600 is X-only and must not win")
	assert.True(t, caps.SupportsResolution(150))
	assert.False(t, caps.SupportsResolution(600))
}
