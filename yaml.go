package main

import "gopkg.in/yaml.v2"

func ReadDecalsData(data []byte) ([]DecalMeta, error) {
	decals := []DecalMeta{}
	err := yaml.Unmarshal(data, &decals)

	if err != nil {
		return nil, err
	}

	for i := range decals {
		decals[i].applyDefaults()
	}

	return decals, nil
}
