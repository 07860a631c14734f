package event

type Observable struct {
	DataType Value
	Data     Value
	Tags     Value
	TLP      Value
	Message  Value
	IOC      Value
}

type Alert struct {
	Title        Value
	Date         Value
	Severity     Value
	Source       Value
	MitreID      Value
	CaseTemplate Value
	Tags         Value
	Description  Value
}

type Case struct {
	CaseID      Value
	Title       Value
	Description Value
	Severity    Value
	Status      Value
	Owner       Value
	TLP         Value
	Tags        Value
}

type Task struct {
	Title       Value
	Status      Value
	Owner       Value
	Description Value
}

func (e Event) Observable() Observable {
	return Observable{
		DataType: e.field("dataType"),
		Data:     e.field("data"),
		Tags:     e.field("tags"),
		TLP:      e.field("tlp"),
		Message:  e.field("message"),
		IOC:      e.field("ioc"),
	}
}

func (e Event) Alert() Alert {
	return Alert{
		Title:        e.field("title"),
		Date:         e.field("date"),
		Severity:     e.field("severity"),
		Source:       e.field("source"),
		MitreID:      e.field("mitreId"),
		CaseTemplate: e.field("caseTemplate"),
		Tags:         e.field("tags"),
		Description:  e.field("description"),
	}
}

func (e Event) Case() Case {
	return Case{
		CaseID:      e.field("caseId"),
		Title:       e.field("title"),
		Description: e.field("description"),
		Severity:    e.field("severity"),
		Status:      e.field("status"),
		Owner:       e.field("owner"),
		TLP:         e.field("tlp"),
		Tags:        e.field("tags"),
	}
}

func (e Event) Task() Task {
	return Task{
		Title:       e.field("title"),
		Status:      e.field("status"),
		Owner:       e.field("owner"),
		Description: e.field("description"),
	}
}
