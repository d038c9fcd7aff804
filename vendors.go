package edid

// PNPID is an entry of the UEFI PNP id registry.
type PNPID struct {
	ID      string
	Company string
	Date    string
}

// A subset of the registry covering common display vendors.
var pnpLookup = map[string]PNPID{
	"ACR": {ID: "ACR", Company: "ACER TECHNOLOGIES", Date: "11/29/1996"},
	"APP": {ID: "APP", Company: "APPLE COMPUTER INC", Date: "11/29/1996"},
	"AUS": {ID: "AUS", Company: "ASUSTEK COMPUTER INC", Date: "12/21/2015"},
	"BOE": {ID: "BOE", Company: "BOE", Date: "12/02/2004"},
	"CMN": {ID: "CMN", Company: "CHIMEI INNOLUX CORPORATION", Date: "09/02/2010"},
	"DEL": {ID: "DEL", Company: "DELL INC.", Date: "12/09/2009"},
	"ENC": {ID: "ENC", Company: "EIZO NANAO CORPORATION", Date: "12/28/1998"},
	"GSM": {ID: "GSM", Company: "GOLDSTAR COMPANY LTD", Date: "11/29/1996"},
	"HPN": {ID: "HPN", Company: "HP INC.", Date: "12/21/2015"},
	"HWP": {ID: "HWP", Company: "HEWLETT PACKARD", Date: "03/15/2001"},
	"IVM": {ID: "IVM", Company: "IIYAMA NORTH AMERICA", Date: "11/29/1996"},
	"LEN": {ID: "LEN", Company: "LENOVO GROUP LIMITED", Date: "06/03/2005"},
	"NEC": {ID: "NEC", Company: "NEC CORPORATION", Date: "05/24/2000"},
	"PHL": {ID: "PHL", Company: "PHILIPS CONSUMER ELECTRONICS COMPANY", Date: "11/29/1996"},
	"SAM": {ID: "SAM", Company: "SAMSUNG ELECTRIC COMPANY", Date: "11/29/1996"},
	"SHP": {ID: "SHP", Company: "SHARP CORPORATION", Date: "11/29/1996"},
	"SNY": {ID: "SNY", Company: "SONY", Date: "11/29/1996"},
	"VSC": {ID: "VSC", Company: "VIEWSONIC CORPORATION", Date: "11/29/1996"},
}

// VendorName returns the registered company for a manufacturer id, or the
// id itself when it is not in the table.
func VendorName(id string) string {
	if pnp, ok := pnpLookup[id]; ok {
		return pnp.Company
	}
	return id
}
