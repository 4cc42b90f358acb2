package domain

var Tables = []interface{}{
	&CompanyInfo{},
	&Product{},
	&Service{},
}
