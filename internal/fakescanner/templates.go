package fakescanner

// Document templates mirror what common eSCL devices emit, including a
// vendor extension element that clients must ignore.

const capabilitiesTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<scan:ScannerCapabilities xmlns:scan="http://schemas.hp.com/imaging/escl/2011/05/03" xmlns:pwg="http://www.pwg.org/schemas/2010/12/sm">
  <pwg:Version>%s</pwg:Version>
  <pwg:MakeAndModel>%s</pwg:MakeAndModel>
  <pwg:SerialNumber>%s</pwg:SerialNumber>
  <scan:AdminURI>http://localhost/admin</scan:AdminURI>
  <scan:VendorMagic>42</scan:VendorMagic>
  <scan:Platen>
    <scan:PlatenInputCaps>
      <scan:MinWidth>8</scan:MinWidth>
      <scan:MaxWidth>%d</scan:MaxWidth>
      <scan:MinHeight>8</scan:MinHeight>
      <scan:MaxHeight>%d</scan:MaxHeight>
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
%s            </scan:DiscreteResolutions>
          </scan:SupportedResolutions>
        </scan:SettingProfile>
      </scan:SettingProfiles>
    </scan:PlatenInputCaps>
  </scan:Platen>
</scan:ScannerCapabilities>
`

const resolutionTemplate = `              <scan:DiscreteResolution>
                <scan:XResolution>%d</scan:XResolution>
                <scan:YResolution>%d</scan:YResolution>
              </scan:DiscreteResolution>
`

const statusTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<scan:ScannerStatus xmlns:scan="http://schemas.hp.com/imaging/escl/2011/05/03" xmlns:pwg="http://www.pwg.org/schemas/2010/12/sm">
  <pwg:Version>%s</pwg:Version>
  <pwg:State>%s</pwg:State>
  <scan:Jobs>
%s  </scan:Jobs>
</scan:ScannerStatus>
`

const jobInfoTemplate = `    <scan:JobInfo>
      <pwg:JobUri>%s</pwg:JobUri>
      <scan:JobState>%s</scan:JobState>
    </scan:JobInfo>
`
