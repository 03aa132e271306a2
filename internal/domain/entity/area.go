package entity

// Area is a top-level region.
type Area struct {
	ID       int    `json:"id"`
	AreaCode int    `json:"area_code"`
	AreaName string `json:"area_name"`
}

// Sigungu is a sub-region, keyed by the composite (area code, sigungu code).
type Sigungu struct {
	AreaCode    int    `json:"area_code"`
	SigunguCode string `json:"sigungu_code"`
	SigunguName string `json:"sigungu_name"`
}
