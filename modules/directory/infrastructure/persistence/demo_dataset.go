package persistence

import "github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"

type Person struct {
	NameEN     string
	NameCN     string
	Age        *int
	Generation string
	Hometown   string
}

type GroupMembership struct {
	NameEN string
	Branch string
	Body   string
	Group  string
}

type PersonPosition struct {
	NameEN   string
	Position string
}

type PersonDegree struct {
	NameEN string
	Degree string
}

// Dataset is the full content of the directory tables.
type Dataset struct {
	Officials []types.Official
	Bodies    []types.Body
	People    []Person
	Groups    []GroupMembership
	Positions []PersonPosition
	Education []PersonDegree
}

func ptr[T any](v T) *T { return &v }

// DemoDataset returns a small, self-consistent dataset for local development and seeding.
func DemoDataset() Dataset {
	return Dataset{
		Officials: []types.Official{
			{
				ID: 1, NameEN: "Xi Jinping", NameCN: "习近平", Age: ptr(70), Generation: ptr(5.0), HomeProvince: "Shaanxi",
				Positions: types.PositionTitles{
					"General Secretary, Chinese Communist Party",
					"President, People's Republic of China",
					"Chairman, Central Military Commission",
				},
				Degrees: []types.Degree{
					{Name: "PhD in Law", Level: "doctoral", Type: "humanities"},
					{Name: "BS in Chemical Engineering", Level: "bachelors", Type: "stem"},
				},
			},
			{
				ID: 2, NameEN: "Li Qiang", NameCN: "李强", Age: ptr(64), Generation: ptr(5.0), HomeProvince: "Zhejiang",
				Positions: types.PositionTitles{"Premier, State Council"},
				Degrees:   []types.Degree{{Name: "BS in Agricultural Engineering", Level: "bachelors", Type: "stem"}},
			},
			{
				ID: 3, NameEN: "Zhao Leji", NameCN: "赵乐际", Age: ptr(67), Generation: ptr(5.0), HomeProvince: "Qinghai",
				Positions: types.PositionTitles{"Chairman, National People's Congress Standing Committee"},
				Degrees:   []types.Degree{{Name: "BS in Economics", Level: "bachelors", Type: "humanities"}},
			},
		},
		Bodies: []types.Body{
			{ID: 1, Name: "Chinese Communist Party", Members: []types.Member{{ID: 1, Title: ptr("General Secretary")}}, Caption: ptr("Party Leadership"), Order: ptr(1)},
			{ID: 3, Name: "State Council", Members: []types.Member{{ID: 2, Title: ptr("Premier")}}, Caption: ptr("Government"), Order: ptr(2)},
			{ID: 4, Name: "National People's Congress", Members: []types.Member{{ID: 3, Title: ptr("Chairman")}}, Caption: ptr("Legislature"), Order: ptr(3)},
			{ID: 2, Name: "Politburo Standing Committee", Parent: ptr(int64(1)), Members: []types.Member{{ID: 1, Title: ptr("General Secretary")}, {ID: 2}, {ID: 3}}, Caption: ptr("Top Leadership")},
		},
		People: []Person{
			{NameEN: "Li Qiang", NameCN: "李强", Age: ptr(64), Generation: "5", Hometown: "Zhejiang"},
			{NameEN: "Xi Jinping", NameCN: "习近平", Age: ptr(70), Generation: "5", Hometown: "Shaanxi"},
			{NameEN: "Zhao Leji", NameCN: "赵乐际", Age: ptr(67), Generation: "5", Hometown: "Qinghai"},
		},
		Groups: []GroupMembership{
			{NameEN: "Xi Jinping", Branch: "Party", Body: "Central Committee", Group: "Politburo Standing Committee"},
			{NameEN: "Li Qiang", Branch: "Party", Body: "Central Committee", Group: "Politburo Standing Committee"},
			{NameEN: "Zhao Leji", Branch: "Party", Body: "Central Committee", Group: "Politburo Standing Committee"},
			{NameEN: "Li Qiang", Branch: "State", Body: "State Council", Group: "Premier and Vice Premiers"},
			{NameEN: "Zhao Leji", Branch: "State", Body: "National People's Congress", Group: "Standing Committee"},
		},
		Positions: []PersonPosition{
			{NameEN: "Xi Jinping", Position: "General Secretary"},
			{NameEN: "Xi Jinping", Position: "President"},
			{NameEN: "Li Qiang", Position: "Premier"},
			{NameEN: "Zhao Leji", Position: "Chairman of the NPC Standing Committee"},
		},
		Education: []PersonDegree{
			{NameEN: "Xi Jinping", Degree: "PhD in Law"},
			{NameEN: "Xi Jinping", Degree: "BS in Chemical Engineering"},
			{NameEN: "Li Qiang", Degree: "BS in Agricultural Engineering"},
			{NameEN: "Zhao Leji", Degree: "BS in Economics"},
		},
	}
}
