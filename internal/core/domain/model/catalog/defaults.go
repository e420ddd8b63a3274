package catalog

// Default reference data used to seed an empty database on first start.
// Prices are KRW, volumes are loading cubes (1.0 ≈ one cubic meter of truck bed).

// DefaultItems returns the seed item price table.
func DefaultItems() []ItemCatalogEntry {
	return []ItemCatalogEntry{
		{Category: "가구", Name: "소파", DisplayName: "소파", UnitPrice: 150000, UnitVolume: 1.2},
		{Category: "가구", Name: "침대", DisplayName: "침대 (프레임+매트리스)", UnitPrice: 200000, UnitVolume: 1.8},
		{Category: "가구", Name: "장롱", DisplayName: "장롱", UnitPrice: 250000, UnitVolume: 2.0},
		{Category: "가구", Name: "장식장", DisplayName: "장식장", UnitPrice: 120000, UnitVolume: 1.0},
		{Category: "가구", Name: "거실장", DisplayName: "거실장", UnitPrice: 130000, UnitVolume: 1.2},
		{Category: "가구", Name: "책상", DisplayName: "책상", UnitPrice: 80000, UnitVolume: 0.8},
		{Category: "가구", Name: "책장", DisplayName: "책장", UnitPrice: 90000, UnitVolume: 0.9},
		{Category: "가구", Name: "의자", DisplayName: "의자", UnitPrice: 20000, UnitVolume: 0.3},
		{Category: "가구", Name: "식탁", DisplayName: "식탁", UnitPrice: 100000, UnitVolume: 1.0},
		{Category: "가전", Name: "냉장고", DisplayName: "냉장고", UnitPrice: 150000, UnitVolume: 1.5},
		{Category: "가전", Name: "세탁기", DisplayName: "세탁기", UnitPrice: 100000, UnitVolume: 0.8},
		{Category: "가전", Name: "에어컨", DisplayName: "에어컨 (실외기 포함)", UnitPrice: 120000, UnitVolume: 0.7},
		{Category: "가전", Name: "TV", DisplayName: "TV", UnitPrice: 80000, UnitVolume: 0.4},
		{Category: "기타", Name: "운동기구", DisplayName: "운동기구", UnitPrice: 100000, UnitVolume: 0.8},
		{Category: "기타", Name: "화분", DisplayName: "화분", UnitPrice: 15000, UnitVolume: 0.2},
	}
}

// DefaultAreaRates returns the seed per-zone crew labor rates.
func DefaultAreaRates() []AreaRate {
	return []AreaRate{
		{AreaName: "강남구", Price1: 100000, Price2: 180000, Price3: 250000},
		{AreaName: "서초구", Price1: 100000, Price2: 180000, Price3: 250000},
		{AreaName: "송파구", Price1: 90000, Price2: 170000, Price3: 240000},
		{AreaName: "마포구", Price1: 90000, Price2: 170000, Price3: 240000},
		{AreaName: "용산구", Price1: 95000, Price2: 175000, Price3: 245000},
		{AreaName: "성동구", Price1: 90000, Price2: 165000, Price3: 235000},
		{AreaName: "영등포구", Price1: 90000, Price2: 165000, Price3: 235000},
		{AreaName: "강서구", Price1: 85000, Price2: 160000, Price3: 230000},
	}
}

// DefaultLadderTiers returns the seed ladder-truck duration price tables.
// Index n holds the price for the (n+1)-hour booking.
func DefaultLadderTiers() []LadderTier {
	return []LadderTier{
		{
			TierName: LadderTierUnder10Floors,
			DurationPrices: []DurationPrice{
				{DurationLabel: "1시간", Price: 150000},
				{DurationLabel: "2시간", Price: 200000},
				{DurationLabel: "3시간", Price: 250000},
				{DurationLabel: "4시간", Price: 300000},
				{DurationLabel: "반나절", Price: 400000},
				{DurationLabel: "하루종일", Price: 600000},
			},
		},
		{
			TierName: LadderTierOver10Floors,
			DurationPrices: []DurationPrice{
				{DurationLabel: "1시간", Price: 200000},
				{DurationLabel: "2시간", Price: 260000},
				{DurationLabel: "3시간", Price: 320000},
				{DurationLabel: "4시간", Price: 380000},
				{DurationLabel: "반나절", Price: 500000},
				{DurationLabel: "하루종일", Price: 750000},
			},
		},
	}
}
