package gen

import (
	"derive-generator/internal/plan"
)

type methodData struct {
	Head    string
	Methods []string
}

// buildMethod renders every accessor, then every mutator, then every setter.
func buildMethod(p *plan.MethodPlan) methodData {
	vis := p.Decl.Vis.Prefix()
	d := methodData{Head: newImplHead(p.Decl).Inherent()}

	for _, f := range p.Fields {
		if !f.Accessor {
			continue
		}

		typ, ref := f.Field.Type.String(), ""
		if f.Returns == plan.ReturnReference {
			typ, ref = "&"+typ, "&"
		}

		d.Methods = append(d.Methods, method(
			vis+"fn "+f.AccessorName()+"(&self) -> "+typ,
			ref+"self."+f.Field.Member(),
		))
	}

	for _, f := range p.Fields {
		if !f.Mutator {
			continue
		}

		d.Methods = append(d.Methods, method(
			vis+"fn "+f.MutatorName()+"(&mut self) -> &mut "+f.Field.Type.String(),
			"&mut self."+f.Field.Member(),
		))
	}

	for _, f := range p.Fields {
		if !f.Setter {
			continue
		}

		arg := f.Field.Binding()

		d.Methods = append(d.Methods, method(
			vis+"fn "+f.SetterName()+"(&mut self, "+arg+": "+f.Field.Type.String()+")",
			"self."+f.Field.Member()+" = "+arg+";",
		))
	}

	return d
}

func method(signature, body string) string {
	return lines(signature+" {\n"+indent+body+"\n}", 1)
}
