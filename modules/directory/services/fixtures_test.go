package services

import "github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"

func ptr[T any](v T) *T { return &v }

func testOfficials() []types.Official {
	return []types.Official{
		{
			ID: 1, NameEN: "Xi Jinping", NameCN: "习近平", Age: ptr(70), Generation: ptr(5.0), HomeProvince: "Shaanxi",
			Positions: types.PositionTitles{"General Secretary", "President"},
			Degrees: []types.Degree{
				{Name: "PhD in Law", Level: "doctoral", Type: "humanities"},
				{Name: "BS in Chemical Engineering", Level: "bachelors", Type: "stem"},
			},
		},
		{
			ID: 2, NameEN: "Li Qiang", NameCN: "李强", Age: ptr(64), Generation: ptr(5.0), HomeProvince: "Zhejiang",
			Positions: types.PositionTitles{"Premier"},
			Degrees:   []types.Degree{{Name: "BS in Agricultural Engineering", Level: "bachelors", Type: "stem"}},
		},
		{
			ID: 3, NameEN: "Zhao Leji", NameCN: "赵乐际", Generation: ptr(6.0), HomeProvince: "Qinghai",
			Degrees: []types.Degree{{Name: "", Level: " ", Type: ""}},
		},
		{
			ID: 4, NameEN: "Wang Huning", NameCN: "王沪宁",
		},
	}
}

func testBodies() []types.Body {
	return []types.Body{
		{ID: 1, Name: "Chinese Communist Party", Members: []types.Member{{ID: 1, Title: ptr("General Secretary")}}, Caption: ptr("Party Leadership"), Order: ptr(2)},
		{ID: 3, Name: "State Council", Members: []types.Member{{ID: 2, Title: ptr("Premier")}}, Caption: ptr("Government"), Order: ptr(1)},
		{ID: 4, Name: "National People's Congress", Members: []types.Member{{ID: 3, Title: ptr("Chairman")}}},
		{ID: 2, Name: "Politburo Standing Committee", Parent: ptr(int64(1)), Members: []types.Member{{ID: 1, Title: ptr("General Secretary")}, {ID: 2}, {ID: 3}}, Caption: ptr("Top Leadership")},
		{ID: 5, Name: "Secretariat", Parent: ptr(int64(2)), Members: []types.Member{{ID: 4}}},
		{ID: 6, Name: "General Office", Parent: ptr(int64(5)), Members: []types.Member{{ID: 99}}},
		{ID: 7, Name: "", Parent: ptr(int64(2)), Members: []types.Member{{ID: 98}}},
	}
}
